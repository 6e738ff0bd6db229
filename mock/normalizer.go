package mock

import (
	"github.com/fwojciec/miner"
	"golang.org/x/net/html"
)

var _ miner.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of miner.Normalizer.
type Normalizer struct {
	NormalizeFn func(body []byte, charset string) *html.Node
}

func (n *Normalizer) Normalize(body []byte, charset string) *html.Node {
	return n.NormalizeFn(body, charset)
}
