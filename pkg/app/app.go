// Package app wires configuration, storage, hooks and logging around the split and join engines.
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/sgaunet/filesplit/pkg/app/join"
	"github.com/sgaunet/filesplit/pkg/app/split"
	"github.com/sgaunet/filesplit/pkg/config"
	"github.com/sgaunet/filesplit/pkg/progress"
	"github.com/sgaunet/filesplit/pkg/storage"
	"github.com/sgaunet/filesplit/pkg/storage/localstorage"
)

// App runs the split, join and verify commands.
type App struct {
	cfg      *config.Config
	storage  storage.Storage
	log      Logger
	progress progress.Reporter
}

// Logger is the subset of *slog.Logger used by the application.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// NewApp returns an App working on the local filesystem. Logging and progress are discarded
// until SetLogger and SetReporter are called.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:      cfg,
		storage:  localstorage.NewLocalStorage(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		progress: progress.NewNoOpReporter(),
	}
}

func (a *App) SetLogger(l Logger) {
	a.log = l
}

func (a *App) SetReporter(r progress.Reporter) {
	a.progress = r
}

func (a *App) SetStorage(s storage.Storage) {
	a.storage = s
}

// Split cuts sourcePath into chunks of the configured size next to basePath.
// The pre split hook runs once the request passed validation and before any chunk is
// written, the post split hook once the manifest is complete.
func (a *App) Split(ctx context.Context, sourcePath, basePath string) (*split.Result, error) {
	splitter := split.NewSplitter(a.storage, a.progress)
	if a.cfg.Hooks.HasPreSplit() {
		if err := splitter.Check(sourcePath, basePath, a.cfg.ChunkSizeMB); err != nil {
			return nil, err
		}
		a.log.Info("Split (call presplit hook)", "source", sourcePath)
		if err := a.cfg.Hooks.ExecutePreSplit(ctx, sourcePath); err != nil {
			return nil, err
		}
	}

	result, err := splitter.Split(ctx, sourcePath, basePath, a.cfg.ChunkSizeMB)
	if err != nil {
		return nil, err
	}
	a.log.Debug("split done",
		"manifest", result.ManifestPath,
		"parts", len(result.ChunkPaths),
		"size", humanize.IBytes(uint64(result.TotalBytes))) //nolint:gosec // sizes are never negative

	if a.cfg.Hooks.HasPostSplit() {
		a.log.Info("Split (call postsplit hook)", "manifest", result.ManifestPath)
		if err := a.cfg.Hooks.ExecutePostSplit(ctx, result.ManifestPath); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Join rebuilds the file described by manifestPath. An empty outputPath selects the name
// recorded in the manifest, next to it.
func (a *App) Join(ctx context.Context, manifestPath, outputPath string) (*join.Result, error) {
	result, err := join.NewJoiner(a.storage, a.progress).Join(ctx, manifestPath, outputPath)
	if err != nil {
		return nil, err
	}
	a.log.Debug("join done",
		"output", result.OutputPath,
		"chunks", result.Metrics.ChunksVerified,
		"size", humanize.IBytes(uint64(result.Metrics.BytesWritten)), //nolint:gosec // sizes are never negative
		"duration", result.Metrics.Duration)

	if a.cfg.Hooks.HasPostJoin() {
		a.log.Info("Join (call postjoin hook)", "output", result.OutputPath)
		if err := a.cfg.Hooks.ExecutePostJoin(ctx, result.OutputPath); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Verify checks every chunk listed in manifestPath. Hooks are not run.
func (a *App) Verify(ctx context.Context, manifestPath string) (*join.Result, error) {
	result, err := join.NewJoiner(a.storage, a.progress).Verify(ctx, manifestPath)
	if err != nil {
		return nil, err
	}
	a.log.Debug("verify done",
		"chunks", result.Metrics.ChunksVerified,
		"duration", result.Metrics.Duration)
	return result, nil
}
