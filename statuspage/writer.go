package statuspage

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// Body is the JSON document sent with every error response.
type Body struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(
	writer http.ResponseWriter,
	statusCode int,
	v interface{},
) (int64, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return 0, err
	}

	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)

	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	return buf.WriteTo(writer)
}

// WriteMessage writes an error response for statusCode with the given
// message and optional details.
func WriteMessage(
	writer http.ResponseWriter,
	statusCode int,
	message string,
	details string,
) (int64, error) {
	return WriteJSON(writer, statusCode, Body{message, details})
}

// WriteError writes an appropriate error response for statusErr. If statusErr
// is (or wraps) an Error its status code and message are used, otherwise a
// generic 500 response is written.
func WriteError(
	writer http.ResponseWriter,
	statusErr error,
) (statusCode int, bodySize int64, err error) {
	var e Error
	if !errors.As(statusErr, &e) {
		e = Error{
			Inner:      statusErr,
			StatusCode: http.StatusInternalServerError,
		}
	}

	bodySize, err = WriteMessage(writer, e.StatusCode, e.message(), e.Details)
	return e.StatusCode, bodySize, err
}
