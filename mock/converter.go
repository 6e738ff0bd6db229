package mock

import "github.com/fwojciec/miner"

var _ miner.Converter = (*Converter)(nil)

// Converter is a mock implementation of miner.Converter.
type Converter struct {
	ConvertFn func(html string, baseURL string) (string, error)
}

func (c *Converter) Convert(html string, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}
