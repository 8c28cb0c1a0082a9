package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "citator",
	Short: "Legal citation enrichment toolkit",
	Long: `citator enriches parsed legal citations with parallel citations and
corrected metadata from authoritative registries, and resolves ambiguous
historical statute references against the Statutes at Large ledger.`,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(enrichCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
