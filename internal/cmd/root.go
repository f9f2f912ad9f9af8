package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "velora",
	Short: "Velora - Storefront backend",
	Long: `Velora is the backend for the Velora storefront: product catalog
with faceted filtering, session carts with coupon pricing, and
checkout handoff to WhatsApp.

The service can run as an HTTP API server, or be driven via CLI
commands to set up the schema, seed demo data and audit the catalog.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
