package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/oshokin/msstore-grabber/internal/config"
	"github.com/oshokin/msstore-grabber/internal/logger"
	"github.com/oshokin/msstore-grabber/internal/service/store"
)

// ExecuteDownloadCommand looks up value, selects links by selectors and downloads them
// one after another into the configured output path.
func ExecuteDownloadCommand(ctx context.Context, cfg *config.Config, value string, selectors []string) {
	downloadLinks(ctx, newService(ctx, cfg), cfg, value, selectors, os.Stdout, newTerminalProgress(ctx))
}

func downloadLinks(
	ctx context.Context,
	s store.Service,
	cfg *config.Config,
	value string,
	selectors []string,
	w io.Writer,
	progress store.ProgressReporter,
) {
	defer s.PrintDownloadSummary(ctx)

	items, ok := fetchItems(ctx, s, cfg, value)
	if !ok {
		return
	}

	if err := PrintItems(w, items); err != nil {
		logger.Errorf(ctx, "Failed to print links: %v", err)
	}

	if _, err := s.Select(selectors); err != nil {
		logger.Errorf(ctx, "Failed to select links: %v", err)

		return
	}

	err := s.DownloadSelected(ctx, cfg.OutputPath, progress)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf(ctx, "Download failed: %v", err)
	}
}
