// Package http loads pages over HTTP for static sites that serve the
// benchmark page without JavaScript rendering.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/scrapebench"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure DocumentLoader implements scrapebench.DocumentLoader at compile time.
var _ scrapebench.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader retrieves pages with plain GET requests.
type DocumentLoader struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a DocumentLoader.
type Option func(*DocumentLoader)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(l *DocumentLoader) {
		l.timeout = d
	}
}

// NewDocumentLoader creates a new HTTP-based DocumentLoader.
func NewDocumentLoader(opts ...Option) *DocumentLoader {
	l := &DocumentLoader{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{
		Timeout: l.timeout,
	}

	return l
}

// IsURL reports whether page should be loaded over HTTP rather than from disk.
func IsURL(page string) bool {
	return strings.HasPrefix(page, "http://") || strings.HasPrefix(page, "https://")
}

// LoadDocument fetches the page at url and lower-cases it.
func (l *DocumentLoader) LoadDocument(ctx context.Context, url string) (*scrapebench.Document, error) {
	if url == "" {
		return nil, scrapebench.Errorf(scrapebench.EINVALID, "page url required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, scrapebench.Errorf(scrapebench.EINVALID, "invalid page url %q", url)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, scrapebench.Errorf(scrapebench.ENOTFOUND, "page %q not found", url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, scrapebench.Errorf(scrapebench.EINVALID, "document %q is empty", url)
	}

	// Decode to UTF-8 using the Content-Type header or the page's meta tag.
	r, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := scrapebench.NewDocument(url, string(body))
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}
