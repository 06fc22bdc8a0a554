package health

import (
	"io"
	"net/http"
)

// LivenessMessage is the body of a liveness response.
const LivenessMessage = "ok"

// HTTPHandler is an http.Handler that serves the liveness endpoint. It
// answers every request with 200 OK, which is what HTTPChecker expects.
type HTTPHandler struct{}

func (handler *HTTPHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, LivenessMessage)
}
