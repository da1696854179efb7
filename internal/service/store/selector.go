package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gobwas/glob"

	"github.com/oshokin/msstore-grabber/internal/client/rgadguard"
)

const (
	// selectorAll selects every displayed item.
	selectorAll = "all"
	// rangeSeparator separates the bounds of an index range such as "2-5".
	rangeSeparator = "-"
)

// SelectItems marks the items matched by selectors as selected and returns all selected items in list order.
// A selector is a 1-based index, an inclusive range "a-b", the keyword "all",
// or a glob pattern matched case-insensitively against item names.
// Nothing is marked when any selector is invalid.
func SelectItems(items []*rgadguard.DownloadItem, selectors []string) ([]*rgadguard.DownloadItem, error) {
	matched := make([]bool, len(items))

	for _, selector := range selectors {
		if err := applySelector(items, strings.TrimSpace(selector), matched); err != nil {
			return nil, err
		}
	}

	for i, item := range items {
		if matched[i] {
			item.Selected = true
		}
	}

	return SelectedItems(items), nil
}

// SelectedItems returns the selected items in list order.
func SelectedItems(items []*rgadguard.DownloadItem) []*rgadguard.DownloadItem {
	var result []*rgadguard.DownloadItem

	for _, item := range items {
		if item.Selected {
			result = append(result, item)
		}
	}

	return result
}

func applySelector(items []*rgadguard.DownloadItem, selector string, matched []bool) error {
	if selector == "" {
		return fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}

	if strings.EqualFold(selector, selectorAll) {
		for i := range matched {
			matched[i] = true
		}

		return nil
	}

	if index, err := strconv.Atoi(selector); err == nil {
		return markRange(selector, index, index, matched)
	}

	if from, to, ok := parseRange(selector); ok {
		return markRange(selector, from, to, matched)
	}

	pattern, err := glob.Compile(strings.ToLower(selector))
	if err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrInvalidSelector, selector, err)
	}

	for i, item := range items {
		if pattern.Match(strings.ToLower(item.Name)) {
			matched[i] = true
		}
	}

	return nil
}

// parseRange parses "a-b" where both bounds are integers.
func parseRange(selector string) (int, int, bool) {
	left, right, found := strings.Cut(selector, rangeSeparator)
	if !found {
		return 0, 0, false
	}

	from, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, false
	}

	to, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, false
	}

	return from, to, true
}

func markRange(selector string, from, to int, matched []bool) error {
	if from < 1 || to > len(matched) || from > to {
		return fmt.Errorf("%w: '%s' is out of range 1-%d", ErrInvalidSelector, selector, len(matched))
	}

	for i := from - 1; i < to; i++ {
		matched[i] = true
	}

	return nil
}
