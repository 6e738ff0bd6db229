package miner

import "maps"

// Strategy selects which extractors run and how their output is combined.
type Strategy string

// Extraction strategies.
const (
	StrategyMeta        Strategy = "meta"
	StrategyReadability Strategy = "readability"
	StrategyHybrid      Strategy = "hybrid"
)

// ParseStrategy returns the strategy named by s.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMeta, StrategyReadability, StrategyHybrid:
		return Strategy(s), nil
	}
	return "", Errorf(EINVALID, "unknown strategy %q", s)
}

// Source identifies the extractor a field value comes from.
type Source string

// Extractor sources.
const (
	SourceMeta        Source = "meta"
	SourceReadability Source = "readability"
)

// Precedence names the extractor consulted first for a field and the one
// used when the first yields nothing.
type Precedence struct {
	Primary   Source
	Secondary Source
}

// DefaultPrecedence returns the hybrid precedence table. Meta tags win for
// every field except description and image, where the scored article body is
// preferred.
func DefaultPrecedence() map[Field]Precedence {
	metaFirst := Precedence{Primary: SourceMeta, Secondary: SourceReadability}
	readabilityFirst := Precedence{Primary: SourceReadability, Secondary: SourceMeta}
	return map[Field]Precedence{
		FieldTitle:       metaFirst,
		FieldAuthor:      metaFirst,
		FieldKeywords:    metaFirst,
		FieldDescription: readabilityFirst,
		FieldImage:       readabilityFirst,
	}
}

// Config controls a single extraction. It must be treated as immutable once
// handed to a consumer.
type Config struct {
	Strategy Strategy

	// StripMarkup reduces the description to plain text.
	StripMarkup bool

	// Markdown renders the description as Markdown. Ignored when StripMarkup is set.
	Markdown bool

	// Precedence overrides the hybrid precedence per field. Fields without an
	// entry use DefaultPrecedence.
	Precedence map[Field]Precedence
}

// DefaultConfig returns the hybrid configuration with default precedence.
func DefaultConfig() Config {
	return Config{
		Strategy:   StrategyHybrid,
		Precedence: DefaultPrecedence(),
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	for f, p := range c.Precedence {
		if !f.Valid() {
			return Errorf(EINVALID, "precedence for unknown field %q", f)
		}
		if !p.Primary.valid() || !p.Secondary.valid() {
			return Errorf(EINVALID, "precedence for %q names an unknown source", f)
		}
		if p.Primary == p.Secondary {
			return Errorf(EINVALID, "precedence for %q uses %q twice", f, p.Primary)
		}
	}
	return nil
}

// ResolvedPrecedence returns a complete precedence table: the overrides in c
// on top of DefaultPrecedence. The returned map is owned by the caller.
func (c Config) ResolvedPrecedence() map[Field]Precedence {
	table := DefaultPrecedence()
	maps.Copy(table, c.Precedence)
	return table
}

func (s Source) valid() bool {
	return s == SourceMeta || s == SourceReadability
}
