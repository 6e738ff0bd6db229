package miner

import "slices"

// Field names a recognized metadata field.
type Field string

// Recognized metadata fields.
const (
	FieldTitle       Field = "title"
	FieldAuthor      Field = "author"
	FieldKeywords    Field = "keywords"
	FieldDescription Field = "description"
	FieldImage       Field = "image"
)

// Fields returns every recognized field in a fixed order.
func Fields() []Field {
	return []Field{FieldTitle, FieldAuthor, FieldKeywords, FieldDescription, FieldImage}
}

// Valid reports whether f is a recognized field.
func (f Field) Valid() bool {
	return slices.Contains(Fields(), f)
}

// Metadata is the normalized summary of a page.
//
// The recognized fields are always serialized, with an empty value when
// unknown. URL, Host, Domain and Favicon are attached by collaborators
// outside the extraction core and are omitted when unset.
type Metadata struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
	Image       string   `json:"image"`

	URL     string `json:"url,omitempty"`
	Host    string `json:"host,omitempty"`
	Domain  string `json:"domain,omitempty"`
	Favicon string `json:"favicon,omitempty"`
}

// NewMetadata returns a record with every field at its default.
func NewMetadata() *Metadata {
	return &Metadata{Keywords: []string{}}
}

// IsEmpty reports whether the field holds no value.
func (m *Metadata) IsEmpty(f Field) bool {
	switch f {
	case FieldTitle:
		return m.Title == ""
	case FieldAuthor:
		return m.Author == ""
	case FieldKeywords:
		return len(m.Keywords) == 0
	case FieldDescription:
		return m.Description == ""
	case FieldImage:
		return m.Image == ""
	}
	return true
}

// CopyField sets the field f of m to the value it holds in src.
func (m *Metadata) CopyField(f Field, src *Metadata) {
	switch f {
	case FieldTitle:
		m.Title = src.Title
	case FieldAuthor:
		m.Author = src.Author
	case FieldKeywords:
		m.Keywords = slices.Clone(src.Keywords)
		if m.Keywords == nil {
			m.Keywords = []string{}
		}
	case FieldDescription:
		m.Description = src.Description
	case FieldImage:
		m.Image = src.Image
	}
}

// Clone returns a deep copy of m.
func (m *Metadata) Clone() *Metadata {
	other := *m
	other.Keywords = slices.Clone(m.Keywords)
	if other.Keywords == nil {
		other.Keywords = []string{}
	}
	return &other
}

// Site holds the host information of a page, resolved from its URL.
type Site struct {
	Host    string
	Domain  string
	Favicon string
}

// SiteResolver resolves host, registrable domain and favicon for a URL.
type SiteResolver interface {
	Resolve(rawURL string) (*Site, error)
}
