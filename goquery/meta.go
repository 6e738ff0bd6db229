package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/miner"
	"golang.org/x/net/html"
)

// Ensure MetaParser implements miner.Parser at compile time.
var _ miner.Parser = (*MetaParser)(nil)

// standardNames are the <meta name="..."> tags read as fallbacks for Open Graph.
var standardNames = map[string]bool{
	"author":      true,
	"keywords":    true,
	"description": true,
}

// MetaParser summarizes a page from its meta tags. Open Graph properties are
// preferred; standard author/keywords/description tags fill the gaps and
// schema.org microdata supplies the image when og:image is absent.
type MetaParser struct{}

// NewMetaParser creates a new MetaParser.
func NewMetaParser() *MetaParser {
	return &MetaParser{}
}

// Parse walks every <meta> element once, in document order. Later tags
// override earlier ones carrying the same key.
func (p *MetaParser) Parse(root *html.Node) *miner.Metadata {
	m := miner.NewMetadata()
	if root == nil {
		return m
	}

	doc := goquery.NewDocumentFromNode(root)
	og := make(map[string]string)
	std := make(map[string]string)

	doc.Find("meta").Each(func(_ int, tag *goquery.Selection) {
		content := strings.TrimSpace(tag.AttrOr("content", ""))

		if property, ok := tag.Attr("property"); ok {
			property = strings.ToLower(strings.TrimSpace(property))
			if key, found := strings.CutPrefix(property, "og:"); found && key != "" {
				og[key] = content
				return
			}
		}

		if name, ok := tag.Attr("name"); ok {
			name = strings.ToLower(strings.TrimSpace(name))
			if standardNames[name] {
				std[name] = content
				return
			}
		}

		if og["image"] == "" {
			if itemprop, ok := tag.Attr("itemprop"); ok && strings.EqualFold(strings.TrimSpace(itemprop), "image") {
				og["image"] = content
			}
		}
	})

	coalesce := func(key string) string {
		if v := og[key]; v != "" {
			return v
		}
		return std[key]
	}

	m.Title = og["title"]
	if m.Title == "" {
		m.Title = documentTitle(doc)
	}
	m.Author = coalesce("author")
	m.Description = coalesce("description")
	m.Image = coalesce("image")
	m.Keywords = splitKeywords(coalesce("keywords"))

	return m
}

// splitKeywords splits a comma separated keyword list, dropping empty entries.
func splitKeywords(s string) []string {
	keywords := []string{}
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
