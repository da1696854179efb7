package store

import (
	"time"

	"github.com/oshokin/msstore-grabber/internal/client/rgadguard"
)

// State is the current activity of the service.
type State int

const (
	// StateIdle means no operation is running.
	StateIdle State = iota
	// StateFetching means a link lookup is running.
	StateFetching
	// StateDownloading means selected files are being downloaded.
	StateDownloading
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateDownloading:
		return "downloading"
	default:
		return "unknown"
	}
}

// Query describes what to look up.
type Query struct {
	// LookupType is the kind of identifier in Value, matched case-insensitively.
	LookupType string
	// Value is a Store URL, ProductId, PackageFamilyName or CategoryId.
	Value string
	// Ring is the release channel, matched case-insensitively.
	Ring string
	// Language is the market language; empty means the configured default.
	Language string
}

// ProgressReporter receives progress events of a download batch.
type ProgressReporter interface {
	// StartFile is called before the item with the given 1-based index is downloaded.
	StartFile(index, total int, item *rgadguard.DownloadItem)
	// Progress reports the completion percentage (0-100) of the current file.
	Progress(percent int)
	// FinishFile is called after the current file, with its error if it failed.
	FinishFile(err error)
}

// DownloadStatistics tracks the results of the current session.
type DownloadStatistics struct {
	// StartTime is when the first operation started.
	StartTime time.Time
	// EndTime is when the last operation finished.
	EndTime time.Time
	// LinksFound is the number of links in the last lookup response.
	LinksFound int64
	// LinksShown is the number of links left after the packages-only filter.
	LinksShown int64
	// FilesSelected is the number of files queued for download.
	FilesSelected int64
	// FilesDownloaded is the number of files saved successfully.
	FilesDownloaded int64
	// BytesDownloaded is the total size of the saved files.
	BytesDownloaded int64
	// OutputPath is the folder files were saved to.
	OutputPath string
	// Failure is the error that stopped the session, if any.
	Failure error
	// FailedItem is the name of the file that failed, if any.
	FailedItem string
}
