package health

import (
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/url"
)

const requestHost = "localhost"
const requestPath = "/"

// HTTPChecker is a checker that connects to the HTTP server to check its status.
type HTTPChecker struct {
	Address string
	UseTLS  bool

	// ServerName is the TLS server name to request when UseTLS is set. If it
	// is empty the host part of Address is used.
	ServerName string

	// Client performs the request. If it is nil a client that does not verify
	// the server's certificate is used. A non-nil client must set ServerName
	// in its own TLS configuration.
	Client *http.Client
}

// Check returns information about the health of the HTTP server.
func (checker *HTTPChecker) Check() Status {
	host, port, err := net.SplitHostPort(checker.Address)
	if err != nil {
		return Status{false, err.Error()}
	} else if host == "" {
		host = requestHost
	}

	client := checker.Client
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
					ServerName:         checker.ServerName,
				},
			},
		}
	}

	var url url.URL
	url.Scheme = "http"
	if checker.UseTLS {
		url.Scheme = "https"
	}
	url.Host = net.JoinHostPort(host, port)
	url.Path = requestPath

	response, err := client.Get(url.String())
	if err != nil {
		return Status{false, err.Error()}
	}
	defer response.Body.Close()

	content, err := io.ReadAll(response.Body)
	if err != nil {
		return Status{false, err.Error()}
	}

	return Status{
		200 <= response.StatusCode && response.StatusCode <= 299,
		string(content),
	}
}
