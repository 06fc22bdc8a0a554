package cert

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/icecave/ytproxy/name"
)

const certExtension = ".crt"
const keyExtension = ".key"

// FileProvider is a certificate provider that reads PEM encoded certificate
// and key pairs from a directory.
//
// A certificate for "www.example.com" is loaded from the first of
// "www.example.com", "_.example.com", "example.com", "_.com" and "com" that
// exists and is valid for the name. The ".crt" file holds the certificate
// chain and the ".key" file holds the private key.
type FileProvider struct {
	BasePath string
	Logger   *log.Logger

	mutex sync.RWMutex
	cache map[string]*tls.Certificate
}

// GetCertificate attempts to fetch a certificate for the given server name.
func (p *FileProvider) GetCertificate(
	ctx context.Context,
	n name.ServerName,
) (*tls.Certificate, error) {
	if cert, ok := p.findInCache(n); ok {
		return cert, nil
	}

	for _, filename := range resolveFilenames(n) {
		cert, err := p.loadCertificate(n, filename)
		if err != nil {
			return nil, err
		}

		if cert != nil {
			p.writeToCache(n, cert)
			return cert, nil
		}
	}

	return nil, nil
}

func (p *FileProvider) loadCertificate(
	n name.ServerName,
	filename string,
) (*tls.Certificate, error) {
	base := filepath.Join(p.BasePath, filename)
	certFile := base + certExtension
	keyFile := base + keyExtension

	if _, err := os.Stat(certFile); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, err
	}

	cert.Leaf, err = x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return nil, err
	}

	if err := cert.Leaf.VerifyHostname(n.Punycode); err != nil {
		p.logf(
			"Certificate '%s' ignored for '%s', %s",
			filename+certExtension,
			n.Unicode,
			err,
		)

		return nil, nil
	}

	p.logf(
		"Loaded certificate for '%s' from '%s', expires at %s, issued by '%s'",
		n.Unicode,
		filename+certExtension,
		cert.Leaf.NotAfter.Format(time.RFC3339),
		cert.Leaf.Issuer.CommonName,
	)

	return &cert, nil
}

// resolveFilenames returns the candidate file names for n, most specific
// first.
func resolveFilenames(n name.ServerName) []string {
	filenames := []string{n.Punycode}

	for {
		parent, ok := n.Parent()
		if !ok {
			return filenames
		}

		filenames = append(filenames, "_."+parent.Punycode, parent.Punycode)
		n = parent
	}
}

func (p *FileProvider) logf(format string, v ...interface{}) {
	if p.Logger != nil {
		p.Logger.Printf(format, v...)
	}
}

func (p *FileProvider) findInCache(
	n name.ServerName,
) (*tls.Certificate, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	cert, ok := p.cache[n.Unicode]

	return cert, ok
}

func (p *FileProvider) writeToCache(
	n name.ServerName,
	cert *tls.Certificate,
) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.cache == nil {
		p.cache = map[string]*tls.Certificate{}
	}

	p.cache[n.Unicode] = cert
}
