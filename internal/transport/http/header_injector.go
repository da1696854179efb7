package http

import (
	"net/http"
)

// HeaderInjector is a custom http.RoundTripper that adds a fixed set of headers to requests
// which do not carry them yet (for example the Referer the link generator expects).
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// headers are set on the request when absent.
	headers http.Header
}

// NewHeaderInjector creates and returns a new instance of HeaderInjector.
// Headers with empty values are ignored.
func NewHeaderInjector(next http.RoundTripper, headers map[string]string) http.RoundTripper {
	injected := make(http.Header, len(headers))

	for name, value := range headers {
		if value == "" {
			continue
		}

		injected.Set(name, value)
	}

	return &HeaderInjector{
		next:    next,
		headers: injected,
	}
}

// RoundTrip executes a single HTTP transaction and adds the missing headers.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	var cloned bool

	for name, values := range t.headers {
		if req.Header.Get(name) != "" {
			continue
		}

		if !cloned {
			req = req.Clone(req.Context())
			cloned = true
		}

		req.Header[name] = append([]string(nil), values...)
	}

	return t.next.RoundTrip(req)
}
