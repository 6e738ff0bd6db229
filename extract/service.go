package extract

import (
	"context"
	"fmt"

	"github.com/fwojciec/miner"
)

// Ensure Service implements miner.MetadataService at compile time.
var _ miner.MetadataService = (*Service)(nil)

// Service runs the full extraction pipeline for a fetched document:
// normalize, compose, then enrich the record with optional Markdown output
// and site information.
type Service struct {
	Normalizer miner.Normalizer
	Composer   *Composer

	// Converter renders the description as Markdown when the config asks for it.
	Converter miner.Converter

	// Sites attaches host, domain and favicon when the document has a URL.
	Sites miner.SiteResolver

	// Hook, if set, post-processes every record before it is returned.
	// A nil return keeps the record unchanged.
	Hook func(*miner.Metadata) *miner.Metadata
}

// Extract returns the complete metadata record for doc.
// Returns EINVALID if doc has no body.
func (s *Service) Extract(ctx context.Context, doc *miner.Document) (*miner.Metadata, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := s.Normalizer.Normalize(doc.Body, doc.Charset)

	m, err := s.Composer.Compose(root)
	if err != nil {
		return nil, fmt.Errorf("compose %s: %w", doc.URL, err)
	}

	cfg := s.Composer.Config()
	if cfg.Markdown && !cfg.StripMarkup && s.Converter != nil && m.Description != "" {
		// Conversion failures keep the HTML description.
		if md, err := s.Converter.Convert(m.Description, doc.URL); err == nil {
			m.Description = md
		}
	}

	if doc.URL != "" {
		m.URL = doc.URL
		if s.Sites != nil {
			if site, err := s.Sites.Resolve(doc.URL); err == nil {
				m.Host = site.Host
				m.Domain = site.Domain
				m.Favicon = site.Favicon
			}
		}
	}

	if s.Hook != nil {
		if hooked := s.Hook(m); hooked != nil {
			m = hooked
		}
	}

	return m, nil
}
