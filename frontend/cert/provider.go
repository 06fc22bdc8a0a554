package cert

import (
	"context"
	"crypto/tls"

	"github.com/icecave/ytproxy/name"
)

// Provider fetches TLS certificates for incoming HTTPS requests.
type Provider interface {
	// GetCertificate attempts to fetch an existing certificate for the given
	// server name. A non-nil error indicates an error with the provider itself;
	// otherwise, a nil certificate indicates a failure to find a certificate.
	GetCertificate(context.Context, name.ServerName) (*tls.Certificate, error)
}
