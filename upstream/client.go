package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/icecave/ytproxy/youtube"
)

// DefaultBaseURL is the base URL of the YouTube Data API v3.
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Response is a successful upstream response.
type Response struct {
	// StatusCode is the upstream HTTP status code, which is relayed to the
	// caller as-is, even when it is not a 2xx code.
	StatusCode int

	// Body is the upstream response body, validated and compacted JSON.
	Body []byte
}

// Client forwards filtered requests to the upstream API.
//
// A Client holds no per-request state and is safe for concurrent use.
type Client struct {
	// BaseURL is the URL to which "/{resource}" is appended. If it is nil,
	// DefaultBaseURL is used.
	BaseURL *url.URL

	// HTTPClient performs the request. If it is nil, http.DefaultClient is
	// used.
	HTTPClient *http.Client

	// UserAgent, if non-empty, is sent as the User-Agent header.
	UserAgent string
}

// URL returns the upstream URL for resource with params as the query string.
func (c *Client) URL(resource youtube.Resource, params youtube.Params) *url.URL {
	var u url.URL
	if c.BaseURL != nil {
		u = *c.BaseURL
	} else {
		base, _ := url.Parse(DefaultBaseURL)
		u = *base
	}

	u.Path = path.Join("/", u.Path, string(resource))
	u.RawPath = ""
	u.RawQuery = params.Encode()
	u.Fragment = ""

	return &u
}

// Forward performs a single GET request for resource with the given params,
// which must already include the API key.
//
// It returns a *TransportError if the upstream API can not be reached and a
// *ParseError if its response body is not valid JSON. Non-2xx responses with
// a JSON body are not errors.
func (c *Client) Forward(
	ctx context.Context,
	resource youtube.Resource,
	params youtube.Params,
) (*Response, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.URL(resource, params).String(),
		nil,
	)
	if err != nil {
		return nil, newTransportError(err)
	}

	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, newTransportError(err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &ParseError{res.StatusCode, err}
	}

	var body bytes.Buffer
	if err := json.Compact(&body, data); err != nil {
		return nil, &ParseError{res.StatusCode, err}
	}

	return &Response{
		StatusCode: res.StatusCode,
		Body:       body.Bytes(),
	}, nil
}
