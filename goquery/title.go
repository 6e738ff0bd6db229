package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// titleSeparatorRe matches the delimiter between a page title and the site
// name ("Headline - Blog", "Headline | Blog"). Hyphenated words do not match.
var titleSeparatorRe = regexp.MustCompile(`\s+[-|–—]\s+`)

// documentTitle returns the page-specific part of the <title> text, falling
// back to the first <h1> when the title is missing or empty.
func documentTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		if head := strings.TrimSpace(titleSeparatorRe.Split(title, 2)[0]); head != "" {
			return head
		}
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
