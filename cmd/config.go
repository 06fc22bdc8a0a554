package cmd

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/icecave/ytproxy/upstream"
	"go.uber.org/multierr"
)

// Config holds configuration values for commands.
type Config struct {
	Port            string
	AllowedOrigin   string
	APIKey          string
	UpstreamURL     *url.URL
	UpstreamTimeout time.Duration
	ProxyProtocol   bool
	CheckTimeout    time.Duration
	CheckServerName string
	Certificates    CertificateConfig
	MinTLSVersion   uint16
	MaxTLSVersion   uint16
	CipherSuite     []uint16
}

// CertificateConfig holds the sources of TLS certificates.
type CertificateConfig struct {
	BasePath         string
	RedisAddress     string
	RedisPassword    string
	RedisCacheExpire time.Duration
}

// TLSEnabled returns true if the server should terminate TLS.
func (config *Config) TLSEnabled() bool {
	return config.Certificates.BasePath != "" ||
		config.Certificates.RedisAddress != ""
}

// LookupFunc returns the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// GetConfigFromEnvironment creates Config object based on the shell environment.
//
// Invalid values are replaced with their defaults. The returned error, which
// may hold several errors, describes each replaced value; the Config is always
// usable.
func GetConfigFromEnvironment() (*Config, error) {
	return GetConfig(os.LookupEnv)
}

// GetConfig creates a Config object from the variables returned by lookup.
func GetConfig(lookup LookupFunc) (*Config, error) {
	e := &environment{lookup: lookup}

	config := &Config{
		Port:            e.port("PORT", "3000"),
		AllowedOrigin:   e.env("ALLOWED_ORIGIN", ""),
		APIKey:          e.env("YT_API_KEY", ""),
		UpstreamURL:     e.envURL("YT_API_URL", upstream.DefaultBaseURL),
		UpstreamTimeout: e.envDuration("UPSTREAM_TIMEOUT", 0),
		ProxyProtocol:   e.envBool("PROXY_PROTOCOL", false),
		CheckTimeout:    e.envDuration("CHECK_TIMEOUT", 500*time.Millisecond),
		CheckServerName: e.env("CHECK_SERVER_NAME", ""),
		Certificates: CertificateConfig{
			BasePath:         e.env("TLS_CERT_PATH", ""),
			RedisAddress:     e.env("REDIS_ADDR", ""),
			RedisPassword:    e.env("REDIS_PASSWORD", ""),
			RedisCacheExpire: e.envDuration("REDIS_CACHE_EXPIRY", time.Minute),
		},
		MinTLSVersion: e.envTLSVersion("TLS_MIN_VERSION"),
		MaxTLSVersion: e.envTLSVersion("TLS_MAX_VERSION"),
		CipherSuite:   e.envTLSCiphers("TLS_CIPHER_SUITE"),
	}

	if config.TLSEnabled() && config.CheckServerName == "" {
		e.err = multierr.Append(
			e.err,
			errors.New("CHECK_SERVER_NAME is not set, TLS health checks will request a certificate for localhost"),
		)
	}

	return config, e.err
}

// environment reads typed values from environment variables, accumulating an
// error for each value that can not be parsed.
type environment struct {
	lookup LookupFunc
	err    error
}

func (e *environment) invalid(key, value, reason string) {
	e.err = multierr.Append(
		e.err,
		fmt.Errorf("%s: ignoring invalid value %q, %s", key, value, reason),
	)
}

func (e *environment) env(key string, def string) string {
	if value, ok := e.lookup(key); ok && value != "" {
		return value
	}

	return def
}

func (e *environment) port(key string, def string) string {
	value, ok := e.lookup(key)
	if !ok || value == "" {
		return def
	}

	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil || n == 0 {
		e.invalid(key, value, "expected a port number")
		return def
	}

	return strconv.FormatUint(n, 10)
}

func (e *environment) envURL(key string, def string) *url.URL {
	value := e.env(key, def)

	u, err := url.Parse(value)
	if err == nil && u.Scheme != "" && u.Host != "" {
		return u
	}

	e.invalid(key, value, "expected an absolute URL")
	u, _ = url.Parse(def)

	return u
}

func (e *environment) envBool(key string, def bool) bool {
	value, ok := e.lookup(key)
	if !ok || value == "" {
		return def
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		e.invalid(key, value, "expected a boolean")
		return def
	}

	return b
}

func (e *environment) envDuration(key string, def time.Duration) time.Duration {
	value, ok := e.lookup(key)
	if !ok || value == "" {
		return def
	}

	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		e.invalid(key, value, "expected a duration such as 1m or 500ms")
		return def
	}

	return d
}

func (e *environment) envTLSVersion(key string) uint16 {
	value, ok := e.lookup(key)
	if !ok || value == "" {
		return 0
	}

	switch strings.ToLower(value) {
	case "tlsv1.0", "v1.0", "1.0", "1_0":
		return tls.VersionTLS10
	case "tlsv1.1", "v1.1", "1.1", "1_1":
		return tls.VersionTLS11
	case "tlsv1.2", "v1.2", "1.2", "1_2":
		return tls.VersionTLS12
	case "tlsv1.3", "v1.3", "1.3", "1_3":
		return tls.VersionTLS13
	}

	e.invalid(key, value, "expected a TLS version such as 1.2")

	return 0
}

func (e *environment) envTLSCiphers(key string) []uint16 {
	value, ok := e.lookup(key)
	if !ok || value == "" {
		return nil
	}

	var ids []uint16
	for _, cipherString := range strings.Split(value, ":") {
		found := false
		for _, cipherSuite := range tls.CipherSuites() {
			if strings.EqualFold(cipherString, cipherSuite.Name) {
				ids = append(ids, cipherSuite.ID)
				found = true
			}
		}

		if !found {
			e.invalid(key, cipherString, "unknown cipher suite")
		}
	}

	return ids
}
