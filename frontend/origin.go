package frontend

import (
	"net/http"

	"github.com/icecave/ytproxy/statuspage"
)

// OriginGate is an http.Handler that restricts cross-origin access to a single
// allowed origin.
//
// If AllowedOrigin is empty the gate does nothing. Otherwise every response
// varies on Origin; requests without an Origin header are passed to Next,
// requests from AllowedOrigin receive CORS headers (and preflight requests are
// answered immediately), and requests from any other origin are refused.
type OriginGate struct {
	AllowedOrigin string
	Next          http.Handler
}

func (gate *OriginGate) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if gate.AllowedOrigin == "" {
		gate.Next.ServeHTTP(writer, request)
		return
	}

	headers := writer.Header()
	addVary(headers, "Origin")

	origin := request.Header.Get("Origin")
	if origin == "" {
		gate.Next.ServeHTTP(writer, request)
		return
	}

	if origin != gate.AllowedOrigin {
		statuspage.WriteError(writer, statuspage.Error{
			StatusCode: http.StatusForbidden,
			Message:    "Origin not allowed",
		})
		return
	}

	headers.Set("Access-Control-Allow-Origin", gate.AllowedOrigin)
	headers.Set("Access-Control-Allow-Methods", "GET,OPTIONS")
	headers.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if request.Method == http.MethodOptions {
		writer.WriteHeader(http.StatusNoContent)
		return
	}

	gate.Next.ServeHTTP(writer, request)
}
