package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"citator/internal/app"
	"citator/internal/platform/config"
	"citator/internal/platform/logger"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <volume> <page>",
	Short: "Expand a Statutes at Large volume/page against the ledger",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		volume, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("volume must be numeric: %q", args[0])
		}

		a, err := app.New(config.FromEnv(), logger.New())
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.Service.Lookup(cmd.Context(), volume, args[1])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}
