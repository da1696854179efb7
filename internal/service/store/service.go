package store

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oshokin/msstore-grabber/internal/client/rgadguard"
	"github.com/oshokin/msstore-grabber/internal/config"
	"github.com/oshokin/msstore-grabber/internal/constants"
	"github.com/oshokin/msstore-grabber/internal/logger"
	"github.com/oshokin/msstore-grabber/internal/utils"
)

// Service resolves Store identifiers into download links and downloads selected files.
type Service interface {
	// Fetch looks up the query and replaces the working set; it returns the displayed items.
	Fetch(ctx context.Context, query *Query) ([]*rgadguard.DownloadItem, error)
	// Items returns the displayed view of the working set.
	Items() []*rgadguard.DownloadItem
	// SetPackagesOnly toggles the packages-only view.
	SetPackagesOnly(packagesOnly bool)
	// Select marks displayed items by selectors and returns all selected displayed items.
	Select(selectors []string) ([]*rgadguard.DownloadItem, error)
	// DownloadSelected downloads the selected displayed items into folder, one after another.
	DownloadSelected(ctx context.Context, folder string, progress ProgressReporter) error
	// State returns the current activity.
	State() State
	// Statistics returns a snapshot of the session statistics.
	Statistics() DownloadStatistics
	// PrintDownloadSummary prints a formatted summary of the session statistics.
	PrintDownloadSummary(ctx context.Context)
}

// ServiceImpl implements Service.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client talks to the link generator.
	client rgadguard.Client
	// items is the working set of the last successful lookup.
	items []*rgadguard.DownloadItem
	// packagesOnly controls the displayed view.
	packagesOnly bool
	// state is the current activity.
	state State
	// stats tracks statistics for the current session.
	stats *DownloadStatistics
	// mutex protects all fields above.
	mutex *sync.Mutex
}

// NewService creates a service bound to the given link generator client.
func NewService(cfg *config.Config, client rgadguard.Client) Service {
	return &ServiceImpl{
		cfg:          cfg,
		client:       client,
		packagesOnly: cfg.PackagesOnly,
		state:        StateIdle,
		stats:        new(DownloadStatistics),
		mutex:        new(sync.Mutex),
	}
}

// Fetch looks up the query and replaces the working set; it returns the displayed items.
// On any error the previous working set is kept.
func (s *ServiceImpl) Fetch(ctx context.Context, query *Query) ([]*rgadguard.DownloadItem, error) {
	request, err := s.buildRequest(query)
	if err != nil {
		return nil, err
	}

	if err = s.enterState(StateFetching); err != nil {
		return nil, err
	}

	defer s.leaveState()

	logger.Infof(ctx, "Fetching links for %s '%s' (ring: %s, language: %s)",
		request.LookupType, request.Value, request.Ring, request.Language)

	html, err := s.client.GetFiles(ctx, request)
	if err != nil {
		s.recordFailure(err, "")

		return nil, err
	}

	items := rgadguard.ParseLinks(html)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.items = items
	displayed := FilterPackages(s.items, s.packagesOnly)

	s.stats.LinksFound = int64(len(items))
	s.stats.LinksShown = int64(len(displayed))

	logger.Infof(ctx, "Found %d links, %d shown", len(items), len(displayed))

	return displayed, nil
}

func (s *ServiceImpl) buildRequest(query *Query) (*rgadguard.GetFilesRequest, error) {
	if query == nil {
		return nil, ErrEmptyQuery
	}

	value := strings.TrimSpace(query.Value)
	if value == "" {
		return nil, ErrEmptyQuery
	}

	lookupType, err := config.NormalizeLookupType(query.LookupType)
	if err != nil {
		return nil, err
	}

	ring, err := config.NormalizeRing(query.Ring)
	if err != nil {
		return nil, err
	}

	language := strings.TrimSpace(query.Language)
	if language == "" {
		language = s.cfg.Language
	}

	return &rgadguard.GetFilesRequest{
		LookupType: lookupType,
		Value:      value,
		Ring:       ring,
		Language:   language,
	}, nil
}

// Items returns the displayed view of the working set.
func (s *ServiceImpl) Items() []*rgadguard.DownloadItem {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return FilterPackages(s.items, s.packagesOnly)
}

// SetPackagesOnly toggles the packages-only view. Selections are kept.
func (s *ServiceImpl) SetPackagesOnly(packagesOnly bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.packagesOnly = packagesOnly
}

// Select marks displayed items by selectors and returns all selected displayed items.
func (s *ServiceImpl) Select(selectors []string) ([]*rgadguard.DownloadItem, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return SelectItems(FilterPackages(s.items, s.packagesOnly), selectors)
}

// DownloadSelected downloads the selected displayed items into folder, strictly in list order.
// The first failure stops the batch; files saved before it are kept.
func (s *ServiceImpl) DownloadSelected(ctx context.Context, folder string, progress ProgressReporter) error {
	selected := SelectedItems(s.Items())
	if len(selected) == 0 {
		return ErrNoSelection
	}

	if err := s.enterState(StateDownloading); err != nil {
		return err
	}

	defer s.leaveState()

	s.mutex.Lock()
	s.stats.FilesSelected += int64(len(selected))
	s.stats.OutputPath = folder
	s.mutex.Unlock()

	if err := os.MkdirAll(folder, constants.DefaultFolderPermissions); err != nil {
		s.recordFailure(err, "")

		return fmt.Errorf("failed to create output path: %w", err)
	}

	for i, item := range selected {
		if err := s.downloadItem(ctx, folder, i+1, len(selected), item, progress); err != nil {
			return err
		}
	}

	logger.Infof(ctx, "Downloaded %d file(s) to: %s", len(selected), folder)

	return nil
}

func (s *ServiceImpl) downloadItem(
	ctx context.Context,
	folder string,
	index, total int,
	item *rgadguard.DownloadItem,
	progress ProgressReporter,
) error {
	destinationPath := filepath.Join(folder, utils.ReplaceInvalidFilenameChars(item.Name))

	var report func(int)

	if progress != nil {
		progress.StartFile(index, total, item)
		report = progress.Progress
	}

	logger.Debugf(ctx, "Downloading %d/%d '%s' to '%s'", index, total, item.Name, destinationPath)

	if exists, err := utils.IsFileExist(destinationPath); err == nil && exists {
		logger.Debugf(ctx, "Replacing existing file: %s", destinationPath)
	}

	bytesWritten, err := DownloadFile(ctx, s.client, item.URL, destinationPath, report)

	if progress != nil {
		progress.FinishFile(err)
	}

	if err != nil {
		s.recordFailure(err, item.Name)

		return fmt.Errorf("download of '%s' failed: %w", item.Name, err)
	}

	s.mutex.Lock()
	s.stats.FilesDownloaded++
	s.stats.BytesDownloaded += bytesWritten
	s.mutex.Unlock()

	return nil
}

// State returns the current activity.
func (s *ServiceImpl) State() State {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.state
}

// Statistics returns a snapshot of the session statistics.
func (s *ServiceImpl) Statistics() DownloadStatistics {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return *s.stats
}

func (s *ServiceImpl) enterState(state State) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("%w: %s", ErrBusy, s.state)
	}

	s.state = state

	if s.stats.StartTime.IsZero() {
		s.stats.StartTime = time.Now()
	}

	return nil
}

func (s *ServiceImpl) leaveState() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.state = StateIdle
	s.stats.EndTime = time.Now()
}

func (s *ServiceImpl) recordFailure(err error, itemName string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.stats.Failure != nil {
		return
	}

	s.stats.Failure = err
	s.stats.FailedItem = itemName
}
