package miner

import (
	"context"

	"golang.org/x/net/html"
)

// Document is a fetched page body awaiting extraction.
type Document struct {
	// URL the body was retrieved from. Optional; enables site information.
	URL string

	// Body is the raw markup in its original encoding.
	Body []byte

	// Charset declared by the transport, if any.
	Charset string
}

// Validate returns an error if the document has nothing to extract from.
func (d *Document) Validate() error {
	if d == nil || len(d.Body) == 0 {
		return Errorf(EINVALID, "can not extract an empty document")
	}
	return nil
}

// Normalizer turns raw markup into a parsed DOM tree.
type Normalizer interface {
	// Normalize decodes body using charset (sniffed from the markup when
	// empty), strips disruptive constructs and parses the result leniently.
	// It never fails; unparseable input yields an empty document node.
	Normalize(body []byte, charset string) *html.Node
}

// Parser extracts a partial metadata record from a DOM tree.
// Implementations must not mutate the tree.
type Parser interface {
	Parse(doc *html.Node) *Metadata
}

// Sanitizer reduces markup to plain text.
type Sanitizer interface {
	StripTags(markup string) string
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. Relative links and
	// images are resolved against baseURL when it is not empty.
	Convert(html string, baseURL string) (string, error)
}

// Fetcher retrieves a document from a URL.
type Fetcher interface {
	// Fetch retrieves the page and reports the charset declared by the
	// transport, if any. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Document, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// MetadataService extracts metadata from fetched documents.
type MetadataService interface {
	// Extract returns the complete metadata record for doc.
	// Returns EINVALID if doc has no body.
	Extract(ctx context.Context, doc *Document) (*Metadata, error)
}
