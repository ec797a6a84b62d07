package maps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Proxy forwards mapping-service requests, substituting the caller-supplied
// credential with the server-held secret. The secret is set once at startup
// and never written afterwards; it must not appear in any response or error.
type Proxy struct {
	client *http.Client
	secret string
}

// NewProxy creates a Proxy holding the server-side mapping credential.
func NewProxy(secret string, timeout time.Duration) *Proxy {
	return &Proxy{
		client: &http.Client{Timeout: timeout},
		secret: secret,
	}
}

// Forward rewrites the credential in rawURL and issues a single GET request.
// The upstream body is returned verbatim on a 2xx response. There are no
// automatic retries.
func (p *Proxy) Forward(ctx context.Context, rawURL string) ([]byte, error) {
	if p.secret == "" {
		return nil, ErrCredentialNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.rewriteCredential(rawURL), nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		// The transport error embeds the rewritten URL, secret included,
		// so it is dropped rather than wrapped.
		return nil, ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body", ErrUpstreamUnavailable)
	}
	return body, nil
}

// rewriteCredential replaces the first key assignment in the query string with
// the server secret, or appends one if the URL carries none.
func (p *Proxy) rewriteCredential(rawURL string) string {
	idx := -1
	for _, sep := range []string{"?key=", "&key="} {
		if i := strings.Index(rawURL, sep); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}

	escaped := url.QueryEscape(p.secret)

	if idx >= 0 {
		start := idx + len("?key=")
		end := strings.IndexByte(rawURL[start:], '&')
		if end < 0 {
			end = len(rawURL) - start
		}
		return rawURL[:start] + escaped + rawURL[start+end:]
	}

	if strings.ContainsRune(rawURL, '?') {
		return rawURL + "&key=" + escaped
	}
	return rawURL + "?key=" + escaped
}
