package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"citator/internal/app"
	"citator/internal/citation"
	"citator/internal/platform/config"
	"citator/internal/platform/logger"
)

var enrichFile string

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich a citation read as JSON from a file or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if enrichFile == "" || enrichFile == "-" {
			raw, err = io.ReadAll(os.Stdin)
		} else {
			raw, err = os.ReadFile(enrichFile)
		}
		if err != nil {
			return err
		}

		var cite citation.Citation
		if err := json.Unmarshal(raw, &cite); err != nil {
			return fmt.Errorf("parse citation: %w", err)
		}

		a, err := app.New(config.FromEnv(), logger.New())
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.Service.Enrich(cmd.Context(), &cite)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	enrichCmd.Flags().StringVarP(&enrichFile, "file", "f", "", "citation JSON file (default stdin)")
}
