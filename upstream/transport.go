package upstream

import (
	"net/http"

	"golang.org/x/net/http2"
)

// NewTransport returns an HTTP transport for talking to the upstream API. It
// uses the same proxy, dialer and timeouts as http.DefaultTransport, with
// HTTP/2 configured explicitly.
func NewTransport() (*http.Transport, error) {
	defaults := http.DefaultTransport.(*http.Transport)

	transport := &http.Transport{
		Proxy:                 defaults.Proxy,
		DialContext:           defaults.DialContext,
		MaxIdleConns:          defaults.MaxIdleConns,
		IdleConnTimeout:       defaults.IdleConnTimeout,
		TLSHandshakeTimeout:   defaults.TLSHandshakeTimeout,
		ExpectContinueTimeout: defaults.ExpectContinueTimeout,
	}

	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, err
	}

	return transport, nil
}
