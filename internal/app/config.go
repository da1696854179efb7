package app

import (
	"context"

	"github.com/oshokin/msstore-grabber/internal/config"
	"github.com/oshokin/msstore-grabber/internal/logger"
)

// ExecuteConfigInitCommand writes a commented default configuration file.
func ExecuteConfigInitCommand(ctx context.Context, path string, overwrite bool) {
	written, err := config.WriteDefaultConfig(path, overwrite)
	if err != nil {
		logger.Fatalf(ctx, "Failed to write configuration: %v", err)
	}

	logger.Infof(ctx, "Configuration written to %s", written)
}
