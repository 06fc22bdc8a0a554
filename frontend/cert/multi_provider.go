package cert

import (
	"context"
	"crypto/tls"

	"github.com/icecave/ytproxy/name"
)

// MultiProvider is a provider that queries each of its providers in turn,
// returning the first certificate found.
type MultiProvider struct {
	Providers []Provider
}

// GetCertificate returns the first certificate found for the given server
// name. It stops at the first provider that fails.
func (m *MultiProvider) GetCertificate(ctx context.Context, n name.ServerName) (*tls.Certificate, error) {
	for _, p := range m.Providers {
		certificate, err := p.GetCertificate(ctx, n)
		if certificate != nil || err != nil {
			return certificate, err
		}
	}

	return nil, nil
}
