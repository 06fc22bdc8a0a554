package frontend

import (
	"net/http"
	"strings"

	"github.com/golang/gddo/httputil/header"
)

// securityHeaders are set on every response.
var securityHeaders = map[string]string{
	"Content-Security-Policy":           "default-src 'self';base-uri 'self';font-src 'self' https: data:;form-action 'self';frame-ancestors 'self';img-src 'self' data:;object-src 'none';script-src 'self';script-src-attr 'none';style-src 'self' https: 'unsafe-inline';upgrade-insecure-requests",
	"Cross-Origin-Opener-Policy":        "same-origin",
	"Cross-Origin-Resource-Policy":      "same-origin",
	"Origin-Agent-Cluster":              "?1",
	"Referrer-Policy":                   "no-referrer",
	"Strict-Transport-Security":         "max-age=15552000; includeSubDomains",
	"X-Content-Type-Options":            "nosniff",
	"X-Dns-Prefetch-Control":            "off",
	"X-Download-Options":                "noopen",
	"X-Frame-Options":                   "SAMEORIGIN",
	"X-Permitted-Cross-Domain-Policies": "none",
	"X-Xss-Protection":                  "0",
}

// SecureHeaders is an http.Handler that adds a fixed set of security-related
// headers to every response before passing the request to Next.
type SecureHeaders struct {
	Next http.Handler
}

func (handler *SecureHeaders) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	headers := writer.Header()
	for name, value := range securityHeaders {
		headers.Set(name, value)
	}

	handler.Next.ServeHTTP(writer, request)
}

// addVary adds token to the Vary header, unless it is already present.
func addVary(headers http.Header, token string) {
	for _, existing := range header.ParseList(headers, "Vary") {
		if existing == "*" || strings.EqualFold(existing, token) {
			return
		}
	}

	headers.Add("Vary", token)
}
