package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Avuorina/MOBgenerator/internal/config"
	"github.com/Avuorina/MOBgenerator/internal/generate"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the config or cached CSV changes",
	Long: `Development mode: watches the config file and the cache directory and
reruns generation on every change. Edits to the cached CSV regenerate
offline, so sheet columns can be tried out locally before editing the
spreadsheet.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWatch(cmd); err != nil {
			fmt.Printf("Watch failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := createLogger(cmd)
	runner := newRunner(cfg, logger)

	configPath, _ := cmd.Flags().GetString("config")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// The cache dir may not exist before the first run; generate first.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := regenerate(ctx, runner, cfg, generate.Options{}); err != nil {
		logger.Error("initial generation failed", "err", err)
	}

	if err := watcher.Add(cfg.Cache.Dir); err != nil {
		return fmt.Errorf("watch cache dir: %w", err)
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := watcher.Add(configPath); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	logger.Info("watching", "cache", cfg.Cache.Dir, "config", configPath)
	printSystemMessage("Watching for changes. Ctrl+C to stop.")

	// Editors and cache writes fire bursts of events; coalesce them.
	var debounce *time.Timer
	trigger := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			printSystemMessage("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(500*time.Millisecond, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case <-trigger:
			// Cached CSV edits regenerate offline; a config change would
			// need a restart anyway, so offline is always safe here.
			if err := regenerate(ctx, runner, cfg, generate.Options{Offline: true}); err != nil {
				logger.Error("regeneration failed", "err", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}

func regenerate(ctx context.Context, runner *generate.Runner, cfg config.Config, opts generate.Options) error {
	results, err := runner.All(ctx, opts)
	if err != nil {
		return err
	}
	total := 0
	for _, res := range results {
		total += len(res.Files)
	}
	printSystemMessage("Regenerated %d files.", total)
	return writeReport(cfg, generate.Markdown(results, time.Now()))
}
