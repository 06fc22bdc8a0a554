package proxy

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/icecave/ytproxy/statuspage"
	"github.com/icecave/ytproxy/upstream"
	"github.com/icecave/ytproxy/youtube"
)

// Forwarder sends a filtered request to the upstream API.
type Forwarder interface {
	Forward(
		ctx context.Context,
		resource youtube.Resource,
		params youtube.Params,
	) (*upstream.Response, error)
}

// Handler is an http.Handler that proxies requests for a YouTube resource to
// the upstream API. The resource name is read from the "resource" route
// variable.
type Handler struct {
	// Whitelist is the set of parameters that may be forwarded. If it is nil,
	// youtube.DefaultWhitelist is used.
	Whitelist youtube.Whitelist

	Upstream Forwarder

	// APIKey is appended to every upstream request. If it is empty, every
	// request fails with a 500 response.
	APIKey string

	Logger *log.Logger
}

var errNoAPIKey = errors.New("API key is not configured")

// ServeHTTP proxies the request to the upstream API.
func (handler *Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	res, err := handler.forward(request)
	if err != nil {
		handler.log(request, err)
		statuspage.WriteError(writer, err)
		return
	}

	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(res.StatusCode)
	if _, err := writer.Write(res.Body); err != nil {
		handler.log(request, err)
	}
}

func (handler *Handler) forward(request *http.Request) (*upstream.Response, error) {
	if handler.APIKey == "" {
		return nil, statuspage.Error{
			Inner:      errNoAPIKey,
			StatusCode: http.StatusInternalServerError,
			Message:    "YT_API_KEY is not configured on the server.",
		}
	}

	whitelist := handler.Whitelist
	if whitelist == nil {
		whitelist = youtube.DefaultWhitelist
	}

	resource, params, err := whitelist.Filter(
		mux.Vars(request)["resource"],
		youtube.ParseQuery(request.URL.RawQuery),
	)
	switch err {
	case nil:
	case youtube.ErrUnsupportedResource:
		return nil, statuspage.Error{
			Inner:      err,
			StatusCode: http.StatusBadRequest,
			Message:    "Unsupported resource",
		}
	case youtube.ErrNoAllowedParameters:
		return nil, statuspage.Error{
			Inner:      err,
			StatusCode: http.StatusBadRequest,
			Message:    "No allowed query parameters provided",
		}
	default:
		return nil, err
	}

	res, err := handler.Upstream.Forward(
		request.Context(),
		resource,
		params.WithKey(handler.APIKey),
	)

	var transportErr *upstream.TransportError
	var parseErr *upstream.ParseError

	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &parseErr):
		return nil, statuspage.Error{
			Inner:      err,
			StatusCode: http.StatusBadGateway,
			Message:    "Invalid JSON response from YouTube API",
			Details:    parseErr.Error(),
		}
	case errors.As(err, &transportErr):
		return nil, statuspage.Error{
			Inner:      err,
			StatusCode: http.StatusInternalServerError,
			Message:    "Failed to reach YouTube API",
			Details:    transportErr.Error(),
		}
	default:
		return nil, err
	}
}

// log writes server-side failures to the logger. Client errors are already
// visible in the access log.
func (handler *Handler) log(request *http.Request, err error) {
	if handler.Logger == nil {
		return
	}

	var e statuspage.Error
	if errors.As(err, &e) && e.StatusCode < http.StatusInternalServerError {
		return
	}

	handler.Logger.Printf(
		"proxy: %s %s: %s",
		request.Method,
		request.URL.Path,
		err,
	)
}
