package camdict

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL           = "internal"
	EINVALID            = "invalid"
	EMALFORMEDURL       = "malformed_url"
	EUNEXPECTEDCATEGORY = "unexpected_category"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("camdict error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CategoryError reports a category token that is neither an entry nor a
// spellcheck page. It unwraps to an *Error with code EUNEXPECTEDCATEGORY.
type CategoryError struct {
	Token string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("unexpected category %q", e.Token)
}

func (e *CategoryError) Unwrap() error {
	return Errorf(EUNEXPECTEDCATEGORY, "unexpected category %q", e.Token)
}
