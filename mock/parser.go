package mock

import (
	"github.com/fwojciec/miner"
	"golang.org/x/net/html"
)

var _ miner.Parser = (*Parser)(nil)

// Parser is a mock implementation of miner.Parser.
type Parser struct {
	ParseFn func(doc *html.Node) *miner.Metadata
}

func (p *Parser) Parse(doc *html.Node) *miner.Metadata {
	return p.ParseFn(doc)
}
