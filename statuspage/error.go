package statuspage

import "net/http"

// Error wraps another error to include the HTTP status code and message to
// send to the client as a result of this error.
type Error struct {
	Inner      error
	StatusCode int

	// Message is the value of the "error" field in the response body. If it
	// is empty, the standard status text is used.
	Message string

	// Details is an optional value for the "details" field.
	Details string
}

func (err Error) Error() string {
	if err.Inner != nil {
		return err.Inner.Error()
	}

	return err.message()
}

func (err Error) Unwrap() error {
	return err.Inner
}

func (err Error) message() string {
	if err.Message != "" {
		return err.Message
	}

	return http.StatusText(err.StatusCode)
}

// NotFound is the error sent for requests that match no route.
var NotFound = Error{
	StatusCode: http.StatusNotFound,
	Message:    "Not found",
}
