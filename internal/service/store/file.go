package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/oshokin/msstore-grabber/internal/client/rgadguard"
	"github.com/oshokin/msstore-grabber/internal/constants"
	"github.com/oshokin/msstore-grabber/internal/logger"
)

const (
	// downloadChunkSize is the size of a single read from the response body.
	downloadChunkSize = 80 * 1024

	// completePercent is reported once a file has been written.
	completePercent = 100

	// File options for overwriting an existing file.
	overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
)

// DownloadFile streams fileURL into destinationPath, replacing any existing file.
// Data is written to a temporary .part file in the same folder, which is renamed
// over the destination only after the whole body was written.
// When the content length is known, report receives the percentage after every chunk;
// it always receives 100 once the file is complete. It returns the number of bytes written.
func DownloadFile(
	ctx context.Context,
	client rgadguard.Client,
	fileURL string,
	destinationPath string,
	report func(percent int),
) (int64, error) {
	if report == nil {
		report = func(int) {}
	}

	fetchResult, err := client.FetchFile(ctx, fileURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch file: %w", err)
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	tempFilePath := filepath.Join(filepath.Dir(destinationPath), uuid.New().String()+constants.ExtensionPart)

	f, err := os.OpenFile(filepath.Clean(tempFilePath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var (
		downloadSucceeded bool
		fileClosed        bool
	)

	defer func() {
		if !fileClosed {
			f.Close() //nolint:errcheck,gosec // The file is removed below.
		}

		if downloadSucceeded {
			return
		}

		if removeErr := os.Remove(tempFilePath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v", tempFilePath, removeErr)
		}
	}()

	bytesWritten, err := copyWithProgress(f, fetchResult.Body, fetchResult.TotalBytes, report)
	if err != nil {
		return bytesWritten, err
	}

	fileClosed = true

	if err = f.Close(); err != nil {
		return bytesWritten, fmt.Errorf("failed to close file: %w", err)
	}

	if err = os.Rename(tempFilePath, destinationPath); err != nil {
		return bytesWritten, fmt.Errorf("failed to move file into place: %w", err)
	}

	downloadSucceeded = true

	report(completePercent)

	return bytesWritten, nil
}

// copyWithProgress copies src to dst in fixed-size chunks, reporting progress
// after every chunk when totalBytes is positive.
func copyWithProgress(dst io.Writer, src io.Reader, totalBytes int64, report func(int)) (int64, error) {
	buffer := make([]byte, downloadChunkSize)

	var bytesRead int64

	for {
		n, readErr := src.Read(buffer)
		if n > 0 {
			if _, writeErr := dst.Write(buffer[:n]); writeErr != nil {
				return bytesRead, fmt.Errorf("failed to write file: %w", writeErr)
			}

			bytesRead += int64(n)

			if totalBytes > 0 {
				report(progressPercent(bytesRead, totalBytes))
			}
		}

		if errors.Is(readErr, io.EOF) {
			return bytesRead, nil
		}

		if readErr != nil {
			return bytesRead, fmt.Errorf("failed to read response: %w", readErr)
		}
	}
}

// progressPercent returns floor(read*100/total) clamped to [0, 100].
func progressPercent(read, total int64) int {
	return int(max(0, min(completePercent, read*completePercent/total)))
}
