package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/Avuorina/MOBgenerator/internal/generate"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated datapack tree over HTTP",
	Long: `Starts a small HTTP server for inspecting the generated datapack:
a JSON index of generated files, their contents, a regeneration trigger and
Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := createLogger(cmd)
	runner := newRunner(cfg, logger)
	port, _ := cmd.Flags().GetString("port")

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/files", func(w http.ResponseWriter, req *http.Request) {
		paths, err := listGenerated(cfg.Datapack.Dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"root": cfg.Datapack.Dir, "files": paths})
	})

	// Raw file contents; chi's wildcard keeps the nested datapack paths.
	r.Get("/files/*", func(w http.ResponseWriter, req *http.Request) {
		rel := chi.URLParam(req, "*")
		http.ServeFile(w, req, filepath.Join(cfg.Datapack.Dir, filepath.FromSlash(rel)))
	})

	r.Post("/generate", func(w http.ResponseWriter, req *http.Request) {
		results, err := runner.All(req.Context(), generate.Options{})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		total := 0
		for _, res := range results {
			total += len(res.Files)
		}
		_ = writeReport(cfg, generate.Markdown(results, time.Now()))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{"files": total})
	})

	r.Method(http.MethodGet, "/metrics", runner.Metrics.Handler())

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("serving datapack", "addr", srv.Addr, "dir", cfg.Datapack.Dir)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown did not complete", "err", err)
			return srv.Close()
		}
	}
	return nil
}

// listGenerated walks the datapack tree and returns the generated file
// paths relative to the root.
func listGenerated(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return filepath.SkipAll // nothing generated yet
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	return paths, err
}
