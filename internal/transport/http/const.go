package http

const (
	// headerUserAgent is the HTTP header name for User-Agent.
	headerUserAgent = "User-Agent"
	// headerAcceptEncoding is the HTTP header name for Accept-Encoding.
	headerAcceptEncoding = "Accept-Encoding"
	// headerContentEncoding is the HTTP header name for Content-Encoding.
	headerContentEncoding = "Content-Encoding"
	// headerContentLength is the HTTP header name for Content-Length.
	headerContentLength = "Content-Length"

	// acceptedEncodings lists the content codings DecompressTransport can decode.
	acceptedEncodings = "gzip, deflate, br"
)
