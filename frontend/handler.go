package frontend

import (
	"log"
	"net/http"
)

// Handler is the outermost http.Handler. It records timing information about
// each request and writes an access log entry once the request completes.
type Handler struct {
	Next   http.Handler
	Logger *log.Logger
}

func (handler *Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	ctx := &LogContext{
		Logger:  handler.Logger,
		Request: request,
	}
	ctx.Metrics.Start()

	wrapped := &ResponseWriter{
		Inner:     writer,
		OnRespond: ctx.Metrics.FirstByteSent,
	}

	defer func() {
		ctx.Metrics.LastByteSent()
		ctx.StatusCode = wrapped.StatusCode
		ctx.Metrics.BytesOut = wrapped.Size
		ctx.Log()
	}()

	handler.Next.ServeHTTP(wrapped, request)
}
