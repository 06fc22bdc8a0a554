package cert

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/icecave/ytproxy/name"
)

// DefaultTimeout specifies the duration to allow for fetching a certificate if
// no other timeout is specified.
const DefaultTimeout = 5 * time.Second

// ProviderAdaptor wraps a Provider to present an interface suitable for use as
// the tls.Config "GetCertificate" callback.
type ProviderAdaptor struct {
	Provider Provider

	// Timeout is the maximum time allowed for a certificate request to complete.
	// If the timeout is zero, the value of DefaultTimeout is used.
	Timeout time.Duration
}

// GetCertificate forwards certificate requests to the provider.
func (adaptor *ProviderAdaptor) GetCertificate(
	info *tls.ClientHelloInfo,
) (*tls.Certificate, error) {
	serverName, err := name.FromTLS(info)
	if err != nil {
		return nil, fmt.Errorf("invalid server name %q: %w", info.ServerName, err)
	}

	ctx, cancel := adaptor.context()
	defer cancel()

	certificate, err := adaptor.Provider.GetCertificate(ctx, serverName)
	if err != nil {
		return nil, err
	} else if certificate == nil {
		return nil, fmt.Errorf("no certificate for %s", serverName)
	}

	return certificate, nil
}

// context returns a new context to use for a request.
func (adaptor *ProviderAdaptor) context() (context.Context, context.CancelFunc) {
	timeout := adaptor.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}
