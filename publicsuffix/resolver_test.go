package publicsuffix_test

import (
	"testing"

	"github.com/fwojciec/miner"
	"github.com/fwojciec/miner/publicsuffix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		host   string
		domain string
	}{
		{"plain domain", "https://example.com/post", "example.com", "example.com"},
		{"subdomain", "https://blog.example.com/a/b?c=d", "blog.example.com", "example.com"},
		{"multi-part suffix", "http://news.bbc.co.uk/story", "news.bbc.co.uk", "bbc.co.uk"},
		{"uppercase host", "https://WWW.Example.ORG", "www.example.org", "example.org"},
		{"port is dropped", "http://www.example.com:8080/", "www.example.com", "example.com"},
		{"ipv4 host", "http://192.168.1.10/page", "192.168.1.10", "192.168.1.10"},
		{"ipv6 host", "http://[::1]:8080/", "::1", "::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			site, err := publicsuffix.NewResolver().Resolve(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.host, site.Host)
			assert.Equal(t, tt.domain, site.Domain)
			assert.Equal(t, publicsuffix.DefaultFaviconBase+tt.domain, site.Favicon)
		})
	}

	t.Run("custom favicon base", func(t *testing.T) {
		t.Parallel()

		r := publicsuffix.NewResolver(publicsuffix.WithFaviconBase("https://icons.example/?d="))
		site, err := r.Resolve("https://blog.example.com")

		require.NoError(t, err)
		assert.Equal(t, "https://icons.example/?d=example.com", site.Favicon)
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := publicsuffix.NewResolver().Resolve("/relative/path")

		require.Error(t, err)
		assert.Equal(t, miner.EINVALID, miner.ErrorCode(err))
	})

	t.Run("keeps host without registrable domain", func(t *testing.T) {
		t.Parallel()

		for _, rawURL := range []string{"http://localhost:8080/a", "https://co.uk/"} {
			site, err := publicsuffix.NewResolver().Resolve(rawURL)

			require.NoError(t, err, rawURL)
			assert.NotEmpty(t, site.Host, rawURL)
			assert.Empty(t, site.Domain, rawURL)
			assert.Empty(t, site.Favicon, rawURL)
		}
	})

	t.Run("rejects unparseable URL", func(t *testing.T) {
		t.Parallel()

		_, err := publicsuffix.NewResolver().Resolve("http://[::1")

		assert.Equal(t, miner.EINVALID, miner.ErrorCode(err))
	})
}
