package frontend

import (
	"net/http"
)

// ResponseWriter wraps an http.ResponseWriter, recording the status code and
// body size of the response.
type ResponseWriter struct {
	Inner      http.ResponseWriter
	StatusCode int
	Size       int64

	// OnRespond, if non-nil, is called when the response headers are sent.
	OnRespond func()
}

// Header forwards to writer.Inner.Header()
func (writer *ResponseWriter) Header() http.Header {
	return writer.Inner.Header()
}

// Write forwards to writer.Inner.Write(). If the headers have not been sent a
// 200 OK status is sent first.
func (writer *ResponseWriter) Write(data []byte) (int, error) {
	if writer.StatusCode == 0 {
		writer.WriteHeader(http.StatusOK)
	}

	size, err := writer.Inner.Write(data)
	writer.Size += int64(size)

	return size, err
}

// WriteHeader forwards to writer.Inner.WriteHeader(). Only the first call has
// any effect.
func (writer *ResponseWriter) WriteHeader(statusCode int) {
	if writer.StatusCode != 0 {
		return
	}

	writer.StatusCode = statusCode
	if writer.OnRespond != nil {
		writer.OnRespond()
	}
	writer.Inner.WriteHeader(statusCode)
}

// Flush forwards to writer.Inner.Flush() if it implements http.Flusher,
// otherwise it does nothing.
func (writer *ResponseWriter) Flush() {
	if flusher, ok := writer.Inner.(http.Flusher); ok {
		flusher.Flush()
	}
}
