// Package store implements the link lookup and download workflow:
// it resolves a Store identifier into download links, keeps the current
// working set with its packages-only view, applies user selections and
// downloads the selected files one after another.
package store
