// Package http provides custom HTTP transport utilities:
// request/response logging, User-Agent and static header injection,
// and transparent decoding of gzip, deflate and brotli responses.
package http
