package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Canonical error codes the ChefNext services reply with. Servers may send
// codes outside this set; callers branch on the string value.
const (
	CodeUnknown            = "unknown"
	CodeInvalidArgument    = "invalid_argument"
	CodeUnauthenticated    = "unauthenticated"
	CodePermissionDenied   = "permission_denied"
	CodeNotFound           = "not_found"
	CodeAlreadyExists      = "already_exists"
	CodeFailedPrecondition = "failed_precondition"
	CodeInternal           = "internal"
)

// APIError is the normalized application error for every non-success RPC
// reply: a human message, a machine-readable code for branching and the
// HTTP status of the response. Service clients propagate it untouched.
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (http %d)", e.Code, e.Message, e.Status)
}

// errorBody is the Connect-style error envelope.
type errorBody struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Details []map[string]any `json:"details,omitempty"`
}

func decodeError(status int, raw []byte) error {
	var body errorBody
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	if body.Message == "" {
		body.Message = fmt.Sprintf("request failed with status %d", status)
	}
	if body.Code == "" {
		body.Code = CodeUnknown
	}
	return &APIError{Code: body.Code, Message: body.Message, Status: status}
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsCode reports whether err is an *APIError carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == code
}

// IsNotFound reports whether err is a not_found reply. Callers use it to
// tell "no profile created yet" apart from a genuine failure.
func IsNotFound(err error) bool { return IsCode(err, CodeNotFound) }
