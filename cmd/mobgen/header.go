package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Avuorina/MOBgenerator/internal/sheet"
)

var headerCmd = &cobra.Command{
	Use:   "header [mobs|items]",
	Short: "Print the first rows of a sheet tab",
	Long: `Downloads one tab and prints its leading rows, for checking column
order against the generator's expectations before a full run.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"mobs", "items"},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHeader(cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(headerCmd)
	headerCmd.Flags().Int("rows", 3, "Number of rows to print")
}

func runHeader(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := createLogger(cmd)
	runner := newRunner(cfg, logger)

	gid := cfg.Sheets.Mobs.GID
	if len(args) > 0 && args[0] == "items" {
		gid = cfg.Sheets.Items.GID
	}

	data, err := runner.Client.Fetch(cmd.Context(), gid)
	if err != nil {
		return err
	}
	records, err := sheet.PositionalRows(data, 0)
	if err != nil {
		return err
	}

	n, _ := cmd.Flags().GetInt("rows")
	for i, rec := range records {
		if i >= n {
			break
		}
		fmt.Printf("Row %d: %q\n", i, rec)
	}
	return nil
}
