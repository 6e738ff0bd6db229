package goquery

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/miner"
	"golang.org/x/net/html"
)

// Ensure ReadabilityParser implements miner.Parser at compile time.
var _ miner.Parser = (*ReadabilityParser)(nil)

// Content score adjustments.
const (
	negativeWeight  = -50
	positiveWeight  = 25
	minParagraphLen = 10
)

var (
	negativeRe      = regexp.MustCompile(`(?i)comment|meta|footer|footnote`)
	positiveClassRe = regexp.MustCompile(`(?i)(^|\s)(post|hentry|entry-?(content|text|body)?|article-?(content|text|body)?)(\s|$)`)
	positiveIDRe    = regexp.MustCompile(`(?i)^(post|hentry|entry-?(content|text|body)?|article-?(content|text|body)?)$`)
)

// junkTags are removed, with their children, from the extracted content.
var junkTags = []string{
	"style", "form", "iframe", "script", "button", "input", "textarea",
	"noscript", "select", "option", "object", "applet", "basefont",
	"bgsound", "blink", "canvas", "command", "menu", "nav", "datalist",
	"embed", "frame", "frameset", "keygen", "label", "marquee", "link",
}

// junkAttrs are stripped from every element of the extracted content.
var junkAttrs = []string{
	"style", "class", "onclick", "onmouseover", "align", "border", "margin",
}

var junkSelector = strings.Join(junkTags, ",")

// scoreTable holds the accumulated content score of each container during a
// single pass. It lives beside the tree and is discarded after selection.
type scoreTable map[*html.Node]int

// ReadabilityParser locates the main article body of a page by scoring the
// parents of its paragraphs, then returns a cleaned copy of the winner as the
// description and its first image.
type ReadabilityParser struct{}

// NewReadabilityParser creates a new ReadabilityParser.
func NewReadabilityParser() *ReadabilityParser {
	return &ReadabilityParser{}
}

// Parse extracts title, description and image. The input tree is not modified.
func (p *ReadabilityParser) Parse(root *html.Node) *miner.Metadata {
	m := miner.NewMetadata()
	if root == nil {
		return m
	}

	m.Title = documentTitle(goquery.NewDocumentFromNode(root))

	box, _ := p.SelectContainer(root)
	if box == nil {
		return m
	}

	original := goquery.NewDocumentFromNode(box).Selection
	m.Image = strings.TrimSpace(original.Find("img").First().AttrOr("src", ""))
	m.Description = clean(original.Clone())

	return m
}

// SelectContainer returns the highest scoring paragraph container and its
// score, or nil when no container scores above zero. Ties go to the
// container visited first.
func (p *ReadabilityParser) SelectContainer(root *html.Node) (*html.Node, int) {
	scores, visited := score(root)

	var best *html.Node
	bestScore := 0
	for _, n := range visited {
		if s := scores[n]; s > bestScore {
			best, bestScore = n, s
		}
	}
	return best, bestScore
}

// score visits every <p> in document order and accumulates a score on its
// parent. A parent is listed once per paragraph child.
func score(root *html.Node) (scoreTable, []*html.Node) {
	scores := make(scoreTable)
	var visited []*html.Node

	goquery.NewDocumentFromNode(root).Find("p").Each(func(_ int, para *goquery.Selection) {
		parent := para.Get(0).Parent
		if parent == nil || parent.Type != html.ElementNode {
			return
		}

		s := scores[parent]

		className := attr(parent, "class")
		if negativeRe.MatchString(className) {
			s += negativeWeight
		} else if positiveClassRe.MatchString(className) {
			s += positiveWeight
		}

		id := attr(parent, "id")
		if negativeRe.MatchString(id) {
			s += negativeWeight
		} else if positiveIDRe.MatchString(id) {
			s += positiveWeight
		}

		if n := utf8.RuneCountInString(para.Text()); n > minParagraphLen {
			s += n
		}

		scores[parent] = s
		visited = append(visited, parent)
	})

	return scores, visited
}

// clean strips junk tags and attributes from a detached copy of the content
// box and renders it.
func clean(box *goquery.Selection) string {
	if slices.Contains(junkTags, goquery.NodeName(box)) {
		return ""
	}

	box.Find(junkSelector).Remove()

	all := box.Find("*").AddSelection(box)
	for _, a := range junkAttrs {
		all.RemoveAttr(a)
	}

	out, err := goquery.OuterHtml(box)
	if err != nil {
		return ""
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
