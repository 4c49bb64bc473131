package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Avuorina/MOBgenerator/internal/config"
	"github.com/Avuorina/MOBgenerator/internal/datapack"
	"github.com/Avuorina/MOBgenerator/internal/generate"
	"github.com/Avuorina/MOBgenerator/internal/logging"
	"github.com/Avuorina/MOBgenerator/internal/metrics"
	"github.com/Avuorina/MOBgenerator/internal/sheet"
)

// loadConfig reads the configuration named by the --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// createLogger configures the application logger. Non-debug runs still log
// at info level; the generator is a batch tool and its progress is the UI.
func createLogger(cmd *cobra.Command) *slog.Logger {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}

// newRunner wires a generation runner from the configuration: cache backend,
// sheet client, datapack writer and metrics.
func newRunner(cfg config.Config, logger *slog.Logger) *generate.Runner {
	var cache sheet.Cache
	if cfg.Cache.RedisAddr != "" {
		cache = sheet.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisDB,
			sheet.WithTTL(time.Duration(cfg.Cache.TTL)))
		logger.Debug("using redis cache", "addr", cfg.Cache.RedisAddr)
	} else {
		cache = sheet.NewFileCache(cfg.Cache.Dir)
	}

	return &generate.Runner{
		Config:  cfg,
		Client:  sheet.NewClient(cfg.SpreadsheetID, cache, logger),
		Writer:  datapack.NewWriter(cfg.Datapack.Dir, logger),
		Metrics: metrics.New(),
		Logger:  logger,
	}
}

// reportPath is where generate leaves its markdown summary, next to the
// cache directory.
func reportPath(cfg config.Config) string {
	return filepath.Join(filepath.Dir(cfg.Cache.Dir), "report.md")
}

// writeReport persists the markdown summary of the last run.
func writeReport(cfg config.Config, md string) error {
	path := reportPath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(md), 0644)
}

// printSystemMessage prints a standardized status line to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}
