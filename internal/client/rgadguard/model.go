package rgadguard

import "io"

// GetFilesRequest describes a single lookup sent to the link generator.
type GetFilesRequest struct {
	// LookupType is the kind of identifier in Value (url, ProductId, PackageFamilyName or CategoryId).
	LookupType string
	// Value is the identifier or Store URL to resolve.
	Value string
	// Ring is the release channel (Retail, RP, WIF or WIS).
	Ring string
	// Language is the market language, e.g. "en-US".
	Language string
}

// DownloadItem is one downloadable file found in the link generator response.
type DownloadItem struct {
	// Selected marks the item for download.
	Selected bool
	// Name is the visible file name of the link.
	Name string
	// URL is the direct download address.
	URL string
	// Extension is the dot-suffix of the URL path (e.g. ".appxbundle"), empty when absent.
	Extension string
	// Expire is the link expiry time as displayed by the service.
	Expire string
	// SHA1 is the file checksum as displayed by the service.
	SHA1 string
	// Size is the file size in bytes parsed from SizeText with SI units ("1 KB" is 1000), 0 when unknown.
	Size int64
	// SizeText is the file size as displayed by the service.
	SizeText string
}

// FetchFileResult holds an open download stream.
type FetchFileResult struct {
	// Body is the response body; the caller must close it.
	Body io.ReadCloser
	// TotalBytes is the announced content length, -1 when unknown.
	TotalBytes int64
}
