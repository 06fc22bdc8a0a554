package frontend

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/icecave/ytproxy/statuspage"
)

// resourcePath matches "/api/yt/{resource}" with the fixed segments in any
// case.
const resourcePath = "/{api:(?i)api}/{yt:(?i)yt}/{resource}"

// allowedMethods is the Allow header sent in response to OPTIONS requests.
const allowedMethods = "GET,HEAD"

// NewRouter returns the route table for the service. proxy serves
// "/api/yt/{resource}" and liveness serves "/".
//
// Paths match without regard to the case of their fixed segments and with or
// without a trailing slash. OPTIONS requests receive the allowed methods.
// Every other request, including one with an unsupported method, receives a
// 404 response.
func NewRouter(proxy, liveness http.Handler) *mux.Router {
	router := mux.NewRouter().SkipClean(true)

	for _, path := range []string{"/", resourcePath, resourcePath + "/"} {
		var handler http.Handler = proxy
		if path == "/" {
			handler = liveness
		}

		router.Handle(path, handler).
			Methods(http.MethodGet, http.MethodHead)

		router.HandleFunc(path, options).
			Methods(http.MethodOptions)
	}

	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	return router
}

func options(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Allow", allowedMethods)
	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, allowedMethods)
}

func notFound(writer http.ResponseWriter, request *http.Request) {
	statuspage.WriteError(writer, statuspage.NotFound)
}
