// Package bluemonday provides a miner.Sanitizer backed by bluemonday's
// strict policy.
package bluemonday

import (
	"html"
	"strings"

	"github.com/fwojciec/miner"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements miner.Sanitizer at compile time.
var _ miner.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips every tag from markup, keeping the text.
// Sanitizer is safe for concurrent use by multiple goroutines.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// StripTags returns the text of markup with tags removed and entities decoded.
func (s *Sanitizer) StripTags(markup string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(markup)))
}
