package store

import (
	"strings"

	"github.com/oshokin/msstore-grabber/internal/client/rgadguard"
	"github.com/oshokin/msstore-grabber/internal/constants"
)

// packageExtensions are the installable package formats kept by the packages-only filter.
//
//nolint:gochecknoglobals // Read-only lookup table.
var packageExtensions = []string{
	constants.ExtensionAppx,
	constants.ExtensionAppxBundle,
	constants.ExtensionMsix,
	constants.ExtensionMsixBundle,
	constants.ExtensionEAppx,
	constants.ExtensionEAppxBundle,
}

// IsPackageExtension reports whether ext is an installable package extension, ignoring case.
func IsPackageExtension(ext string) bool {
	for _, allowed := range packageExtensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}

	return false
}

// FilterPackages returns the items to display. When packagesOnly is set, only items with an
// installable package extension are kept. The input order is preserved and the input is not modified.
func FilterPackages(items []*rgadguard.DownloadItem, packagesOnly bool) []*rgadguard.DownloadItem {
	result := make([]*rgadguard.DownloadItem, 0, len(items))

	for _, item := range items {
		if packagesOnly && !IsPackageExtension(item.Extension) {
			continue
		}

		result = append(result, item)
	}

	return result
}
