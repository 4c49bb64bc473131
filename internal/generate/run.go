package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Avuorina/MOBgenerator/internal/config"
	"github.com/Avuorina/MOBgenerator/internal/datapack"
	"github.com/Avuorina/MOBgenerator/internal/metrics"
	"github.com/Avuorina/MOBgenerator/internal/sheet"
)

// Runner drives a full generation pass: fetch (or reuse) the sheet CSV,
// decode its rows, render files and write them under the datapack root.
type Runner struct {
	Config  config.Config
	Client  *sheet.Client
	Writer  *datapack.Writer
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Options alter one generation pass.
type Options struct {
	// Offline reuses the cached CSV instead of downloading.
	Offline bool
	// DryRun renders files but writes nothing.
	DryRun bool
}

// Result summarizes one sheet's pass.
type Result struct {
	Sheet   string
	Files   []datapack.File
	Skipped int
}

// Mobs generates the mob bank/spawn_map/spawn files.
func (r *Runner) Mobs(ctx context.Context, opts Options) (Result, error) {
	res := Result{Sheet: "mobs"}

	data, err := r.csv(ctx, r.Config.Sheets.Mobs.GID, opts)
	if err != nil {
		return res, err
	}
	rows, err := sheet.HeaderRows(data)
	if err != nil {
		return res, err
	}

	for _, row := range rows {
		m, err := sheet.DecodeMob(row)
		if err != nil {
			return res, err
		}
		if m.Empty() {
			res.Skipped++
			r.Metrics.RowsSkipped.WithLabelValues(res.Sheet).Inc()
			continue
		}

		mob := ResolveMob(m, r.Config.Defaults)
		res.Files = append(res.Files, mob.Files()...)
		r.Metrics.RowsProcessed.WithLabelValues(res.Sheet).Inc()
		r.Logger.Info("generated mob", "id", mob.ID, "name", mob.NameJP, "boss", mob.Boss)
	}

	return res, r.flush(res, opts)
}

// Items generates the item register files and loot tables.
func (r *Runner) Items(ctx context.Context, opts Options) (Result, error) {
	res := Result{Sheet: "items"}

	data, err := r.csv(ctx, r.Config.Sheets.Items.GID, opts)
	if err != nil {
		return res, err
	}
	records, err := sheet.PositionalRows(data, r.Config.Sheets.Items.SkipRows)
	if err != nil {
		return res, err
	}

	for i, rec := range records {
		row := sheet.DecodeItem(rec)
		if row.Empty() {
			res.Skipped++
			r.Metrics.RowsSkipped.WithLabelValues(res.Sheet).Inc()
			continue
		}

		item := ResolveItem(row, i+1, r.Config.Defaults)
		res.Files = append(res.Files, item.Files()...)
		r.Metrics.RowsProcessed.WithLabelValues(res.Sheet).Inc()
		r.Logger.Info("generated item", "id", item.UniqueID, "name", item.NameJP)
	}

	return res, r.flush(res, opts)
}

// All runs both sheets and returns both results; the first error stops the
// pass.
func (r *Runner) All(ctx context.Context, opts Options) ([]Result, error) {
	mobs, err := r.Mobs(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mobs: %w", err)
	}
	items, err := r.Items(ctx, opts)
	if err != nil {
		return []Result{mobs}, fmt.Errorf("items: %w", err)
	}
	return []Result{mobs, items}, nil
}

func (r *Runner) csv(ctx context.Context, gid string, opts Options) ([]byte, error) {
	if opts.Offline {
		data, err := r.Client.Cached(ctx, gid)
		if errors.Is(err, sheet.ErrCacheMiss) {
			return nil, fmt.Errorf("no cached copy for gid %s; run once without --offline", gid)
		}
		return data, err
	}
	return r.Client.Fetch(ctx, gid)
}

func (r *Runner) flush(res Result, opts Options) error {
	if opts.DryRun {
		r.Logger.Info("dry run, skipping writes", "sheet", res.Sheet, "files", len(res.Files))
		return nil
	}
	if err := r.Writer.WriteAll(res.Files); err != nil {
		return err
	}
	r.Metrics.FilesWritten.WithLabelValues(res.Sheet).Add(float64(len(res.Files)))
	r.Logger.Info("wrote files", "sheet", res.Sheet, "files", len(res.Files), "skipped_rows", res.Skipped)
	return nil
}
