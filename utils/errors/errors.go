package errors

import (
	"strings"

	"github.com/houzze/houzze-api/constant"
)

// CustomError carries an entry of the error taxonomy, optionally with
// per-instance detail messages (e.g. the full list of validation violations).
type CustomError struct {
	errType  constant.ErrorType
	messages []string
}

func (c CustomError) Error() string {
	if len(c.messages) > 0 {
		return strings.Join(c.messages, ", ")
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// ErrorMessages returns the detail messages, if any.
func (c CustomError) ErrorMessages() []string {
	return c.messages
}

// ErrorType returns the taxonomy entry of this error.
func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithMessages attaches detail messages to a taxonomy entry.
func SetCustomErrorWithMessages(errorType constant.ErrorType, messages []string) CustomError {
	return CustomError{
		errType:  errorType,
		messages: messages,
	}
}
