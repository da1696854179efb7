package store

import "errors"

// Common errors for the service layer.
var (
	// ErrEmptyQuery indicates that no Store URL or identifier was given.
	ErrEmptyQuery = errors.New("please enter a value (Store URL, ProductId, PackageFamilyName, or CategoryId)")
	// ErrNoSelection indicates that a download was requested without selected items.
	ErrNoSelection = errors.New("nothing selected, select one or more items to download")
	// ErrInvalidSelector indicates that a selector is neither a valid index, range, keyword nor glob pattern.
	ErrInvalidSelector = errors.New("invalid selector")
	// ErrBusy indicates that another fetch or download is still running.
	ErrBusy = errors.New("another operation is in progress")
)
