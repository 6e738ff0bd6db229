package mock

import "github.com/fwojciec/miner"

var _ miner.SiteResolver = (*SiteResolver)(nil)

// SiteResolver is a mock implementation of miner.SiteResolver.
type SiteResolver struct {
	ResolveFn func(rawURL string) (*miner.Site, error)
}

func (r *SiteResolver) Resolve(rawURL string) (*miner.Site, error) {
	return r.ResolveFn(rawURL)
}
