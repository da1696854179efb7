package rgadguard

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrInternalServerError indicates that the service reported an internal error in its response body.
	ErrInternalServerError = errors.New("service returned: Internal Server Error")
	// ErrEmptyList indicates that the service found no files for the query.
	ErrEmptyList = errors.New("the server returned an empty list (no files), try a different ring or identifier")
)
