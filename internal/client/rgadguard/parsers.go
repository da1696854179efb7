package rgadguard

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"

	"github.com/oshokin/msstore-grabber/internal/utils"
)

var (
	// linkRowPattern matches a table row containing an anchor; it is applied to the whole document.
	linkRowPattern = regexp.MustCompile(`(?is)<tr[^>]*>.*?<a\s+href="(?P<url>[^"]+)"[^>]*>(?P<text>.*?)</a>.*?</tr>`)
	// tagPattern matches any markup tag inside the anchor text.
	tagPattern = regexp.MustCompile(`<.*?>`)

	linkRowURLIndex  = linkRowPattern.SubexpIndex("url")
	linkRowTextIndex = linkRowPattern.SubexpIndex("text")
)

// ParseLinks extracts download items from the link generator HTML in document order.
// Rows without a usable link or name are skipped; malformed input yields no items.
func ParseLinks(document string) []*DownloadItem {
	matches := linkRowPattern.FindAllStringSubmatch(document, -1)
	items := make([]*DownloadItem, 0, len(matches))

	for _, match := range matches {
		link := html.UnescapeString(match[linkRowURLIndex])
		name := strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(match[linkRowTextIndex], "")))

		if strings.TrimSpace(link) == "" || name == "" {
			continue
		}

		item := &DownloadItem{
			Name:      name,
			URL:       link,
			Extension: utils.URLPathExtension(link),
		}

		fillRowDetails(item, match[0])

		items = append(items, item)
	}

	return items
}

// fillRowDetails reads the expiry, checksum and size cells of the row holding the link.
// Missing cells leave the fields empty.
func fillRowDetails(item *DownloadItem, fragment string) {
	// Table cells outside a table are dropped by the HTML parser.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table>" + fragment + "</table>"))
	if err != nil {
		return
	}

	cells := doc.Find("a[href]").First().Closest("tr").Find("td")

	cellText := func(index int) string {
		if index >= cells.Length() {
			return ""
		}

		return strings.TrimSpace(cells.Eq(index).Text())
	}

	item.Expire = cellText(expireCellIndex)
	item.SHA1 = cellText(sha1CellIndex)
	item.SizeText = cellText(sizeCellIndex)

	if item.SizeText == "" {
		return
	}

	if size, parseErr := humanize.ParseBytes(item.SizeText); parseErr == nil {
		item.Size = utils.SafeUint64ToInt64(size)
	}
}
