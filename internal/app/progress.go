package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/msstore-grabber/internal/client/rgadguard"
	"github.com/oshokin/msstore-grabber/internal/logger"
)

const (
	// progressBarMax is the bar length in percent.
	progressBarMax = 100
	// progressBarWidth is the rendered bar width in characters.
	progressBarWidth = 40
)

// terminalProgress renders one progress bar per downloaded file.
type terminalProgress struct {
	// ctx carries the logger.
	ctx context.Context //nolint:containedctx // Reporter callbacks have no context parameter.
	// writer receives the rendered bars.
	writer io.Writer
	// showBar disables bar rendering when logging above info level.
	showBar bool
	// bar is the bar of the current file.
	bar *progressbar.ProgressBar
	// index and total describe the position of the current file.
	index, total int
	// name is the current file name.
	name string
}

func newTerminalProgress(ctx context.Context) *terminalProgress {
	return &terminalProgress{
		ctx:     ctx,
		writer:  os.Stderr,
		showBar: logger.Level() <= zap.InfoLevel,
	}
}

// StartFile creates a bar for the next file.
func (p *terminalProgress) StartFile(index, total int, item *rgadguard.DownloadItem) {
	p.index, p.total, p.name = index, total, item.Name

	if !p.showBar {
		return
	}

	p.bar = progressbar.NewOptions(
		progressBarMax,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription(fmt.Sprintf("[%d/%d] %s", index, total, item.Name)),
		progressbar.OptionSetWidth(progressBarWidth),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(p.writer) //nolint:errcheck // Terminal output.
		}),
	)
}

// Progress moves the bar to percent.
func (p *terminalProgress) Progress(percent int) {
	if p.bar == nil {
		return
	}

	_ = p.bar.Set(percent)
}

// FinishFile closes the bar and logs the result.
func (p *terminalProgress) FinishFile(err error) {
	if p.bar != nil {
		if err == nil {
			_ = p.bar.Finish()
		} else {
			_ = p.bar.Exit()
		}

		p.bar = nil
	}

	if err == nil {
		logger.Infof(p.ctx, "Downloaded %d/%d: %s", p.index, p.total, p.name)
	}
}
