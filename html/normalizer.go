// Package html provides the document normalizer: it decodes raw markup to
// UTF-8, strips constructs that confuse extraction and parses the result
// into a golang.org/x/net/html tree.
package html

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/fwojciec/miner"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DefaultCharset is used when neither the transport nor the markup declares one.
const DefaultCharset = "utf-8"

// contentTypeMeta is prepended to every document so the parser never guesses
// the encoding of already decoded text.
const contentTypeMeta = `<meta http-equiv="Content-Type" content="text/html; charset=utf-8"/>`

var (
	charsetRe  = regexp.MustCompile(`(?i)charset=(?:"([\w-]+)"|'([\w-]+)'|([\w-]+));?`)
	doubleBrRe = regexp.MustCompile(`(?i)<br\s*/?>\s*<br\s*/?>`)
	fontRe     = regexp.MustCompile(`(?i)</?font[^>]*>`)
	scriptRe   = regexp.MustCompile(`(?is)<script(.*?)>(.*?)</script>`)
)

// Ensure Normalizer implements miner.Normalizer at compile time.
var _ miner.Normalizer = (*Normalizer)(nil)

// Normalizer turns raw markup into a parsed DOM tree.
// Normalizer is safe for concurrent use by multiple goroutines.
type Normalizer struct {
	fallback string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithFallbackCharset sets the charset assumed when none is declared.
// Defaults to DefaultCharset.
func WithFallbackCharset(name string) Option {
	return func(n *Normalizer) {
		n.fallback = name
	}
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{fallback: DefaultCharset}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize decodes body, sanitizes it and parses it leniently.
// It never fails: input that cannot be parsed yields an empty document node.
func (n *Normalizer) Normalize(body []byte, declared string) *html.Node {
	label := strings.TrimSpace(declared)
	if label == "" {
		label = SniffCharset(body)
	}
	if label == "" {
		label = n.fallback
	}

	markup := Sanitize(decode(body, label))

	doc, err := html.Parse(strings.NewReader(contentTypeMeta + markup))
	if err != nil {
		return &html.Node{Type: html.DocumentNode}
	}
	return doc
}

// SniffCharset returns the first charset declared in the markup, or an
// empty string if there is none.
func SniffCharset(body []byte) string {
	m := charsetRe.FindSubmatch(body)
	if m == nil {
		return ""
	}
	for _, g := range m[1:] {
		if len(g) > 0 {
			return string(g)
		}
	}
	return ""
}

// Sanitize removes the first in-body charset declaration, turns doubled line
// breaks into paragraph boundaries, and drops font tags and script blocks.
func Sanitize(s string) string {
	if loc := charsetRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + s[loc[1]:]
	}

	s = doubleBrRe.ReplaceAllString(s, "</p><p>")
	s = fontRe.ReplaceAllString(s, "")
	s = scriptRe.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

// decode converts body from the named charset to UTF-8. Unknown labels are
// read as UTF-8 and undecodable input is passed through unchanged.
func decode(body []byte, label string) string {
	enc, name := charset.Lookup(label)
	if enc == nil || name == "utf-8" {
		return string(bytes.ToValidUTF8(body, []byte("�")))
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		return string(body)
	}
	return string(out)
}
