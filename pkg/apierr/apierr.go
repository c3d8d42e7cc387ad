package apierr

import (
	"fmt"
	"net/http"
)

// Error codes surfaced to clients in the {error, msg} body.
const (
	CodeInvalidParameter   = "INVALID_PARAMETER"
	CodeMissingRequirement = "MISSING_REQUIREMENT"
	CodeMissingDietType    = "MISSING_DIET_TYPE"
	CodeInvalidDietType    = "INVALID_DIET_TYPE"
	CodeInvalidPriceRange  = "INVALID_PRICE_RANGE"
	CodeAIConfigMissing    = "AI_CONFIG_MISSING"
	CodeAIBadGateway       = "AI_BAD_GATEWAY"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

// Error is the closed error kind for this API: an HTTP status, a
// machine-readable code and a human message, optionally wrapping the
// underlying cause.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func Wrap(status int, code, message string, err error) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: err}
}

func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

func BadGateway(message string, err error) *Error {
	return Wrap(http.StatusBadGateway, CodeAIBadGateway, message, err)
}
