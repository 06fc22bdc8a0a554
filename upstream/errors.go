package upstream

import (
	"errors"
	"net/url"
)

// TransportError indicates that the upstream API could not be reached.
type TransportError struct {
	Err error
}

// Error returns the underlying cause. The request URL is never included, as
// it carries the API key.
func (err *TransportError) Error() string {
	return err.Err.Error()
}

func (err *TransportError) Unwrap() error {
	return err.Err
}

// ParseError indicates that the upstream API responded with a body that is
// not valid JSON.
type ParseError struct {
	StatusCode int
	Err        error
}

func (err *ParseError) Error() string {
	return err.Err.Error()
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// newTransportError strips the *url.Error wrapper that http.Client adds, so
// that the request URL does not end up in logs or responses.
func newTransportError(err error) *TransportError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	return &TransportError{err}
}
