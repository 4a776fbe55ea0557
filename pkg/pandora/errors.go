package pandora

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents an error response from the Pandora API.
//
// Failed calls return a JSON body of the form
// {"message": ..., "errorCode": ..., "errorString": ...}; all three
// fields are surfaced verbatim. A non-2xx response without such a body
// is mapped onto the same type with the HTTP status filled in.
type Error struct {
	Message     string `json:"message"`
	Code        int    `json:"errorCode"`
	ErrorString string `json:"errorString"`
}

// Error codes the service is known to return.
const (
	ErrCodeInvalidRequest   = 0
	ErrCodeInvalidAuthToken = 1001
	ErrCodeInvalidLogin     = 1002
)

func (e *Error) Error() string {
	return fmt.Sprintf("pandora: %s (%d): %s", e.ErrorString, e.Code, e.Message)
}

// Is reports whether target is a Pandora error with the same code,
// so errors.Is() can match on *Error values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// newErrorFromResponse builds an *Error from a non-2xx response,
// preferring the structured API error body when one is present.
func newErrorFromResponse(resp *Response) *Error {
	if len(resp.Body) > 0 {
		var body struct {
			Message     string `json:"message"`
			Code        *int   `json:"errorCode"`
			ErrorString string `json:"errorString"`
		}
		if err := json.Unmarshal(resp.Body, &body); err == nil &&
			(body.Message != "" || body.ErrorString != "" || body.Code != nil) {
			apiErr := &Error{Message: body.Message, ErrorString: body.ErrorString}
			if body.Code != nil {
				apiErr.Code = *body.Code
			}
			return apiErr
		}
	}
	return &Error{
		Message:     "HTTP error",
		Code:        resp.StatusCode,
		ErrorString: http.StatusText(resp.StatusCode),
	}
}

// TransportError represents a network-level failure: no response was
// received at all. It is distinct from *Error, which means the server
// answered with an error.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pandora: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrMissingCSRF is returned by Login when the service did not set the
// csrftoken cookie on the initial HEAD request.
var ErrMissingCSRF = errors.New("pandora: no csrftoken cookie in response")
