package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Avuorina/MOBgenerator/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate [mobs|items|all]",
	Short: "Generate datapack files from the spreadsheet",
	Long: `Downloads the configured sheet tabs as CSV and generates the datapack
files: bank/spawn_map/spawn mcfunctions for mobs, register mcfunctions and
loot tables for items. Defaults to all sheets.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"mobs", "items", "all"},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd, args); err != nil {
			fmt.Printf("Generation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Bool("offline", false, "Use the cached CSV instead of downloading")
	generateCmd.Flags().Bool("dry-run", false, "Render files without writing them")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := createLogger(cmd)
	runner := newRunner(cfg, logger)

	offline, _ := cmd.Flags().GetBool("offline")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	opts := generate.Options{Offline: offline, DryRun: dryRun}

	target := "all"
	if len(args) > 0 {
		target = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var results []generate.Result
	switch target {
	case "mobs":
		res, err := runner.Mobs(ctx, opts)
		if err != nil {
			return err
		}
		results = []generate.Result{res}
	case "items":
		res, err := runner.Items(ctx, opts)
		if err != nil {
			return err
		}
		results = []generate.Result{res}
	default:
		results, err = runner.All(ctx, opts)
		if err != nil {
			return err
		}
	}

	total := 0
	for _, res := range results {
		total += len(res.Files)
	}
	printSystemMessage("Generated %d files into %s", total, cfg.Datapack.Dir)

	if !dryRun {
		md := generate.Markdown(results, time.Now())
		if err := writeReport(cfg, md); err != nil {
			logger.Warn("could not write report", "err", err)
		}
	}
	return nil
}
