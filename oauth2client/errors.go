package oauth2client

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEndpoint is returned by NewConfig when an endpoint is not an
	// absolute URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint URL")

	// ErrMissingAccessToken is returned by Exchange when the provider answered
	// 200 without a usable access_token.
	ErrMissingAccessToken = errors.New("could not find access_token in the response")
)

// TransportError is returned by Exchange when the token request could not be
// completed or its response could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError is returned by Exchange when the token endpoint
// responds with anything other than 200.
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("expected `200`, found `%d`", e.StatusCode)
}
