package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velora-store/velora/internal/catalog"
	"github.com/velora-store/velora/internal/config"
	"github.com/velora-store/velora/internal/database"
)

var showSkipped bool

var checkCmd = &cobra.Command{
	Use:   "check-catalog",
	Short: "Audit the live catalog through the normalizer",
	Long: `Run every active product row through the catalog normalizer and
report what a storefront request would actually serve: per-category
counts, facet domains, and any rows the normalizer had to skip.`,
	RunE: checkCatalog,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&showSkipped, "show-skipped", false, "Show details of skipped rows")
}

func checkCatalog(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Auditing catalog...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repo := database.NewProductRepository(db)
	rows, err := repo.ListActive(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	products, errs := catalog.Normalize(rows)

	if len(products) == 0 {
		fmt.Println("📭 No products in the catalog")
		fmt.Println("💡 Try running: velora seed")
		return nil
	}

	byCategory := make(map[string]int)
	byDomain := make(map[string]int)
	placeholders := 0
	for _, p := range products {
		byCategory[p.Category]++
		byDomain[string(p.Domain)]++
		if strings.HasPrefix(p.Image, "/images/placeholders/") {
			placeholders++
		}
	}

	fmt.Printf("\n📋 %d products served, %d rows skipped\n", len(products), len(errs))
	fmt.Println(strings.Repeat("─", 50))

	fmt.Println("\n🗂  By category:")
	for category, count := range byCategory {
		fmt.Printf("   %-20s %d\n", category, count)
	}

	fmt.Println("\n🏷  By facet domain:")
	for domain, count := range byDomain {
		fmt.Printf("   %-20s %d\n", domain, count)
	}

	if placeholders > 0 {
		fmt.Printf("\n🖼  %d products are using placeholder images\n", placeholders)
	}

	if len(errs) > 0 {
		if showSkipped {
			fmt.Println("\n⚠️  Skipped rows:")
			for _, e := range errs {
				fmt.Printf("   • %v\n", e)
			}
		} else {
			fmt.Printf("\n💡 Use --show-skipped to see the %d skipped rows\n", len(errs))
		}
	}

	return nil
}
