package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/msstore-grabber/internal/client/rgadguard"
)

const (
	tableMinWidth = 0
	tableTabWidth = 4
	tablePadding  = 2
)

// PrintItems writes the displayed links as an aligned table with 1-based indices,
// which are the indices accepted by the download selectors.
func PrintItems(w io.Writer, items []*rgadguard.DownloadItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No links to show (use --all to include non-package files).")

		return err
	}

	table := tabwriter.NewWriter(w, tableMinWidth, tableTabWidth, tablePadding, ' ', 0)

	fmt.Fprintln(table, "#\tNAME\tTYPE\tSIZE\tEXPIRES") //nolint:errcheck // Errors surface on Flush.

	for i, item := range items {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\n", //nolint:errcheck // Errors surface on Flush.
			i+1, item.Name, displayExtension(item.Extension), displaySize(item), item.Expire)
	}

	return table.Flush()
}

func displayExtension(ext string) string {
	if ext == "" {
		return "-"
	}

	return ext
}

// displaySize prefers the size text the service sent, since Size is parsed with SI units.
func displaySize(item *rgadguard.DownloadItem) string {
	switch {
	case item.SizeText != "":
		return item.SizeText
	case item.Size > 0:
		return humanize.Bytes(uint64(item.Size))
	default:
		return "-"
	}
}
