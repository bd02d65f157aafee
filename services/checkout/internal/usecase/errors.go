package usecase

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeMissingRequiredField ErrorCode = "missing-required-field"
	CodeOrderUpdateFailed    ErrorCode = "order-update-failed"
	CodeOrderItemsReadFailed ErrorCode = "order-items-read-failed"
	CodeInternal             ErrorCode = "internal-error"
)

type FulfillmentError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *FulfillmentError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *FulfillmentError) Unwrap() error {
	return e.Err
}

// Details is the underlying cause, empty when there is none.
func (e *FulfillmentError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newFulfillmentError(code ErrorCode, message string, err error) *FulfillmentError {
	return &FulfillmentError{Code: code, Message: message, Err: err}
}

// AsFulfillmentError returns the FulfillmentError in err's chain, or wraps err
// as an internal error.
func AsFulfillmentError(err error) *FulfillmentError {
	var fulfillErr *FulfillmentError
	if errors.As(err, &fulfillErr) {
		return fulfillErr
	}
	return newFulfillmentError(CodeInternal, "Internal server error", err)
}
