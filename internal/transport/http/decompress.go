package http

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/oshokin/msstore-grabber/internal/logger"
)

// DecompressTransport is a custom http.RoundTripper that advertises gzip, deflate and brotli
// support and transparently decodes compressed response bodies.
type DecompressTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
}

// NewDecompressTransport creates and returns a new instance of DecompressTransport.
func NewDecompressTransport(next http.RoundTripper) http.RoundTripper {
	return &DecompressTransport{next: next}
}

// RoundTrip executes a single HTTP transaction and decodes the response body.
// Requests that already carry an Accept-Encoding header are passed through untouched.
func (t *DecompressTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(headerAcceptEncoding) != "" {
		return t.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set(headerAcceptEncoding, acceptedEncodings)

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get(headerContentEncoding)))

	body, err := decodeBody(encoding, resp.Body)
	if err != nil {
		resp.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		return nil, err
	}

	if body == resp.Body {
		if encoding != "" && encoding != "identity" {
			logger.Warnf(req.Context(), "Unknown Content-Encoding '%s', passing body through", encoding)
		}

		return resp, nil
	}

	resp.Body = body
	resp.Header.Del(headerContentEncoding)
	resp.Header.Del(headerContentLength)
	resp.ContentLength = -1
	resp.Uncompressed = true

	return resp, nil
}

// decodeBody wraps the body with a decoder for the given content coding.
// The original body is returned unchanged for identity and unknown codings.
// An empty encoded body decodes to an empty body.
func decodeBody(encoding string, body io.ReadCloser) (io.ReadCloser, error) {
	switch encoding {
	case "gzip", "x-gzip", "deflate", "br":
	default:
		return body, nil
	}

	buffered := bufio.NewReader(body)

	if _, err := buffered.Peek(1); errors.Is(err, io.EOF) {
		return &decodedBody{reader: buffered, closers: []io.Closer{body}}, nil
	}

	switch encoding {
	case "deflate":
		return newDeflateBody(buffered, body)
	case "br":
		return &decodedBody{reader: brotli.NewReader(buffered), closers: []io.Closer{body}}, nil
	default:
		reader, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}

		return &decodedBody{reader: reader, closers: []io.Closer{reader, body}}, nil
	}
}

// newDeflateBody decodes "deflate" bodies. RFC 9110 defines them as zlib streams,
// but many servers send raw DEFLATE data, so the zlib header is sniffed first.
func newDeflateBody(buffered *bufio.Reader, body io.Closer) (io.ReadCloser, error) {
	header, err := buffered.Peek(2)
	if err == nil && isZlibHeader(header[0], header[1]) {
		reader, zlibErr := zlib.NewReader(buffered)
		if zlibErr != nil {
			return nil, fmt.Errorf("failed to create zlib reader: %w", zlibErr)
		}

		return &decodedBody{reader: reader, closers: []io.Closer{reader, body}}, nil
	}

	reader := flate.NewReader(buffered)

	return &decodedBody{reader: reader, closers: []io.Closer{reader, body}}, nil
}

// isZlibHeader reports whether two bytes form a valid zlib stream header.
func isZlibHeader(cmf, flg byte) bool {
	const deflateMethod = 8

	return cmf&0x0f == deflateMethod && (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// decodedBody reads through a decoder and closes both the decoder and the raw body.
type decodedBody struct {
	reader  io.Reader
	closers []io.Closer
}

func (b *decodedBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *decodedBody) Close() error {
	var errs []error

	for _, closer := range b.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
