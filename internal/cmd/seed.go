package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velora-store/velora/internal/config"
	"github.com/velora-store/velora/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the demo catalog and coupons",
	Long: `Populate the products and coupons tables with a small demo
catalog covering every facet domain (usage, flavor, game), so a fresh
install has something to browse and filter.`,
	RunE: seedDemoData,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seedDemoData(cmd *cobra.Command, args []string) error {
	fmt.Println("🌱 Seeding demo catalog...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	inserted, err := db.SeedDemoData()
	if err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}

	if inserted == 0 {
		fmt.Println("📭 Nothing to do, demo catalog already present")
		return nil
	}

	fmt.Printf("✅ Seeded %d products\n", inserted)
	return nil
}
