package logx

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Init configures the global logger. Development gets a human console
// writer at debug level; production keeps JSON at info level.
func Init(environment string) {
	if environment == EnvProduction {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger()
	log.Logger = log.Logger.Level(zerolog.DebugLevel)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
