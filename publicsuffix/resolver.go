// Package publicsuffix resolves the host, registrable domain and favicon of
// a page URL using the public suffix list.
package publicsuffix

import (
	"net"
	"net/url"
	"strings"

	"github.com/fwojciec/miner"
	"golang.org/x/net/publicsuffix"
)

// DefaultFaviconBase is prefixed to the registrable domain to build the
// favicon URL.
const DefaultFaviconBase = "http://www.google.com/s2/favicons?domain="

// Ensure Resolver implements miner.SiteResolver at compile time.
var _ miner.SiteResolver = (*Resolver)(nil)

// Resolver implements miner.SiteResolver.
type Resolver struct {
	faviconBase string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFaviconBase replaces the favicon service prefix.
func WithFaviconBase(base string) Option {
	return func(r *Resolver) {
		r.faviconBase = base
	}
}

// NewResolver creates a new Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{faviconBase: DefaultFaviconBase}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns site information for rawURL. IP hosts are their own
// domain. Hosts without a registrable domain, such as localhost, keep Host
// and leave Domain and Favicon empty. Returns EINVALID when rawURL has no
// host.
func (r *Resolver) Resolve(rawURL string) (*miner.Site, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, miner.Errorf(miner.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil, miner.Errorf(miner.EINVALID, "URL %q has no host", rawURL)
	}

	domain := host
	if net.ParseIP(host) == nil {
		domain, err = publicsuffix.EffectiveTLDPlusOne(strings.TrimSuffix(host, "."))
		if err != nil {
			return &miner.Site{Host: host}, nil
		}
	}

	return &miner.Site{
		Host:    host,
		Domain:  domain,
		Favicon: r.faviconBase + domain,
	}, nil
}
