package mock

import "github.com/fwojciec/miner"

var _ miner.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of miner.Sanitizer.
type Sanitizer struct {
	StripTagsFn func(markup string) string
}

func (s *Sanitizer) StripTags(markup string) string {
	return s.StripTagsFn(markup)
}
