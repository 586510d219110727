package postgrest

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a successful (2xx) PostgREST response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header

	// Count is set when the request asked for a count and the server
	// reported a total in Content-Range.
	Count *int64
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal(r.Body, v)
}

// Error is a PostgREST error response.
//
// Code is either a Postgres SQLSTATE (e.g. "23505") or a PostgREST code
// (e.g. "PGRST116").
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// Error returns the server's message verbatim, which is what clients see.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("postgrest error: status %d", e.Status)
}

func newError(status int, body []byte) *Error {
	e := &Error{Status: status}
	// A type mismatch on one field still fills the others.
	_ = json.Unmarshal(body, e)
	if e.Message != "" {
		return e
	}

	// Gateways in front of PostgREST answer with plain text or {"error": ...}.
	var alt struct {
		Error string `json:"error"`
		Msg   string `json:"msg"`
	}
	switch {
	case json.Unmarshal(body, &alt) == nil && alt.Error != "":
		e.Message = alt.Error
	case alt.Msg != "":
		e.Message = alt.Msg
	case len(body) > 0 && !json.Valid(body):
		e.Message = string(body)
	}
	return e
}
