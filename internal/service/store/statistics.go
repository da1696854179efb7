package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/msstore-grabber/internal/logger"
)

const summarySeparator = "═══════════════════════════════════════════════════════════════"

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// PrintDownloadSummary prints a formatted summary of the session statistics.
func (s *ServiceImpl) PrintDownloadSummary(ctx context.Context) {
	stats := s.Statistics()

	// Nothing was attempted.
	if stats.StartTime.IsZero() {
		return
	}

	wasInterrupted := ctx.Err() != nil || errors.Is(stats.Failure, context.Canceled)

	logger.Info(ctx, "")
	logger.Info(ctx, summarySeparator)

	if wasInterrupted {
		logger.Info(ctx, "                SESSION SUMMARY (Interrupted)")
	} else {
		logger.Info(ctx, "                       SESSION SUMMARY")
	}

	logger.Info(ctx, summarySeparator)

	logger.Infof(ctx, "Links:            %d found", stats.LinksFound)
	logger.Infof(ctx, "  Shown:          %d", stats.LinksShown)

	if stats.FilesSelected > 0 {
		logger.Info(ctx, "")
		logger.Infof(ctx, "Files:            %d selected", stats.FilesSelected)
		logger.Infof(ctx, "  Downloaded:     %d", stats.FilesDownloaded)

		if stats.OutputPath != "" {
			logger.Infof(ctx, "  Saved To:       %s", stats.OutputPath)
		}
	}

	s.printDataTransferStatistics(ctx, &stats)

	logger.Info(ctx, summarySeparator)

	s.printFinalMessage(ctx, wasInterrupted, &stats)
}

// printDataTransferStatistics prints data transfer statistics.
func (s *ServiceImpl) printDataTransferStatistics(ctx context.Context, stats *DownloadStatistics) {
	if stats.BytesDownloaded > 0 {
		logger.Info(ctx, "")
		logger.Infof(ctx, "Data Downloaded:  %s", humanize.Bytes(uint64(stats.BytesDownloaded))) //nolint:gosec // Never negative.
	}

	if stats.EndTime.IsZero() {
		return
	}

	duration := stats.EndTime.Sub(stats.StartTime)
	logger.Infof(ctx, "Duration:         %s", formatDuration(duration))

	if stats.BytesDownloaded > 0 && duration > 100*time.Millisecond {
		bytesPerSecond := float64(stats.BytesDownloaded) / duration.Seconds()
		logger.Infof(ctx, "Average Speed:    %s/s", humanize.Bytes(uint64(bytesPerSecond))) //nolint:gosec // Never negative.
	}
}

// printFinalMessage prints a helpful message based on session results.
func (s *ServiceImpl) printFinalMessage(ctx context.Context, wasInterrupted bool, stats *DownloadStatistics) {
	switch {
	case wasInterrupted:
		logger.Info(ctx, "")
		logger.Warn(ctx, "Interrupted by user (CTRL+C).")

		if stats.FilesDownloaded > 0 {
			logger.Infof(ctx, "Successfully downloaded %d file(s) before interruption.", stats.FilesDownloaded)
		}
	case stats.Failure != nil && stats.FailedItem != "":
		logger.Info(ctx, "")
		logger.Warnf(ctx, "Stopped at '%s' after %d of %d file(s); remaining files were not downloaded.",
			stats.FailedItem, stats.FilesDownloaded, stats.FilesSelected)
	case stats.FilesDownloaded > 0:
		logger.Info(ctx, "")
		logger.Info(ctx, "All downloads completed successfully!")
	}
}
