package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velora-store/velora/internal/config"
	"github.com/velora-store/velora/internal/database"
)

var dropFirst bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up the storefront database schema",
	Long: `Creates the storefront tables (products, coupons, orders,
order_items). Safe to run repeatedly: existing tables are left alone
unless --drop-first is given.`,
	RunE: setupSchema,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
}

func setupSchema(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up storefront database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	fmt.Println("✅ Schema ready")
	return nil
}
