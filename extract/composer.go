// Package extract provides metadata extraction orchestration.
// It composes the meta tag and readability parsers into one record and
// drives the normalize, compose and enrich pipeline for fetched documents.
package extract

import (
	"github.com/fwojciec/miner"
	"golang.org/x/net/html"
)

// Results holds the partial records produced by each parser.
type Results struct {
	Meta        *miner.Metadata
	Readability *miner.Metadata
}

// from returns the record produced by the named parser.
func (r Results) from(s miner.Source) *miner.Metadata {
	switch s {
	case miner.SourceMeta:
		return r.Meta
	case miner.SourceReadability:
		return r.Readability
	}
	return nil
}

// Merge combines parser results field by field. For each field the primary
// source wins when it holds a value, then the secondary source; otherwise
// the field keeps its default.
func Merge(results Results, precedence map[miner.Field]miner.Precedence) *miner.Metadata {
	m := miner.NewMetadata()
	for _, f := range miner.Fields() {
		p, ok := precedence[f]
		if !ok {
			continue
		}
		for _, src := range []miner.Source{p.Primary, p.Secondary} {
			if r := results.from(src); r != nil && !r.IsEmpty(f) {
				m.CopyField(f, r)
				break
			}
		}
	}
	return m
}

// Composer runs the parsers selected by a Config over a DOM tree and merges
// their output into a complete record.
// Composer is safe for concurrent use by multiple goroutines.
type Composer struct {
	meta        miner.Parser
	readability miner.Parser
	sanitizer   miner.Sanitizer

	config     miner.Config
	precedence map[miner.Field]miner.Precedence
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithSanitizer sets the sanitizer used when the config asks for a plain
// text description.
func WithSanitizer(s miner.Sanitizer) ComposerOption {
	return func(c *Composer) {
		c.sanitizer = s
	}
}

// NewComposer creates a Composer for cfg. The config is copied; later changes
// to cfg do not affect the Composer.
//
// Returns EINVALID if cfg is invalid or a component it needs is missing.
func NewComposer(meta, readability miner.Parser, cfg miner.Config, opts ...ComposerOption) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Composer{
		meta:        meta,
		readability: readability,
		config:      cfg,
		precedence:  cfg.ResolvedPrecedence(),
	}
	c.config.Precedence = c.precedence
	for _, opt := range opts {
		opt(c)
	}

	needMeta := cfg.Strategy != miner.StrategyReadability
	needReadability := cfg.Strategy != miner.StrategyMeta
	if needMeta && c.meta == nil {
		return nil, miner.Errorf(miner.EINVALID, "strategy %q requires a meta parser", cfg.Strategy)
	}
	if needReadability && c.readability == nil {
		return nil, miner.Errorf(miner.EINVALID, "strategy %q requires a readability parser", cfg.Strategy)
	}
	if cfg.StripMarkup && c.sanitizer == nil {
		return nil, miner.Errorf(miner.EINVALID, "stripping markup requires a sanitizer")
	}

	return c, nil
}

// Config returns the configuration the Composer was built with.
func (c *Composer) Config() miner.Config {
	cfg := c.config
	cfg.Precedence = c.config.ResolvedPrecedence()
	return cfg
}

// Compose extracts a complete metadata record from doc.
// Returns EINVALID if doc is nil.
func (c *Composer) Compose(doc *html.Node) (*miner.Metadata, error) {
	if doc == nil {
		return nil, miner.Errorf(miner.EINVALID, "can not extract an empty document")
	}

	var m *miner.Metadata
	switch c.config.Strategy {
	case miner.StrategyMeta:
		m = onDefaults(c.meta.Parse(doc))
	case miner.StrategyReadability:
		m = onDefaults(c.readability.Parse(doc))
	case miner.StrategyHybrid:
		m = Merge(Results{
			Meta:        c.meta.Parse(doc),
			Readability: c.readability.Parse(doc),
		}, c.precedence)
	default:
		return nil, miner.Errorf(miner.EINVALID, "unknown strategy %q", c.config.Strategy)
	}

	if c.config.StripMarkup && m.Description != "" {
		m.Description = c.sanitizer.StripTags(m.Description)
	}

	return m, nil
}

// onDefaults copies a single parser's record onto a fresh default record so
// every field is present.
func onDefaults(r *miner.Metadata) *miner.Metadata {
	m := miner.NewMetadata()
	if r == nil {
		return m
	}
	for _, f := range miner.Fields() {
		m.CopyField(f, r)
	}
	return m
}
