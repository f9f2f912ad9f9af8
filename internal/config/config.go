package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string       `mapstructure:"environment"`
	Server      ServerConfig `mapstructure:"server"`
	DB          DBConfig     `mapstructure:"db"`
	Redis       RedisConfig  `mapstructure:"redis"`
	Store       StoreConfig  `mapstructure:"store"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type RedisConfig struct {
	URL     string        `mapstructure:"url"`
	CartTTL time.Duration `mapstructure:"cart_ttl"`
}

// StoreConfig carries the shop identity the order composer needs: the
// messaging transport base and the fixed destination account.
type StoreConfig struct {
	MessagingBaseURL string `mapstructure:"messaging_base_url"`
	WhatsAppNumber   string `mapstructure:"whatsapp_number"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.velora/")
	v.AddConfigPath("/etc/velora/")

	// Enable environment variable override with VELORA_ prefix
	v.SetEnvPrefix("VELORA")
	v.AutomaticEnv()

	v.SetDefault("environment", "development")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("redis.cart_ttl", 30*24*time.Hour)
	v.SetDefault("store.messaging_base_url", "https://wa.me")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
