package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/oshokin/msstore-grabber/internal/client/rgadguard"
	"github.com/oshokin/msstore-grabber/internal/config"
	"github.com/oshokin/msstore-grabber/internal/logger"
	"github.com/oshokin/msstore-grabber/internal/service/store"
)

// ExecuteRootCommand looks up value and prints the download links as a table.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, value string) {
	listLinks(ctx, newService(ctx, cfg), cfg, value, os.Stdout)
}

func listLinks(ctx context.Context, s store.Service, cfg *config.Config, value string, w io.Writer) {
	defer s.PrintDownloadSummary(ctx)

	items, ok := fetchItems(ctx, s, cfg, value)
	if !ok {
		return
	}

	if err := PrintItems(w, items); err != nil {
		logger.Errorf(ctx, "Failed to print links: %v", err)
	}
}

func newService(ctx context.Context, cfg *config.Config) store.Service {
	client, err := rgadguard.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize rg-adguard client: %v", err)
	}

	return store.NewService(cfg, client)
}

// fetchItems runs the lookup and logs failures; cancellation is not reported.
func fetchItems(
	ctx context.Context,
	s store.Service,
	cfg *config.Config,
	value string,
) ([]*rgadguard.DownloadItem, bool) {
	items, err := s.Fetch(ctx, &store.Query{
		LookupType: cfg.LookupType,
		Value:      value,
		Ring:       cfg.Ring,
		Language:   cfg.Language,
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Errorf(ctx, "Failed to fetch links: %v", err)
		}

		return nil, false
	}

	return items, true
}
