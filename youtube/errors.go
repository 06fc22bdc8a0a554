package youtube

import "errors"

var (
	// ErrUnsupportedResource indicates that the requested resource is not
	// one that the proxy forwards.
	ErrUnsupportedResource = errors.New("unsupported resource")

	// ErrNoAllowedParameters indicates that none of the query parameters in
	// the request survived filtering.
	ErrNoAllowedParameters = errors.New("no allowed query parameters provided")
)
