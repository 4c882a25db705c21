package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrEditLimitExceeded indicates the order already used its single permitted edit.
var ErrEditLimitExceeded = errors.New("order edit limit exceeded")

// ErrOrderLocked indicates the order was issued and is closed for edits.
var ErrOrderLocked = errors.New("order is issued and can no longer be edited")

// ErrInvalidPaymentMethod indicates a payment without a Cash or Terminal method.
var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// ErrConflict indicates a lost race: duplicate order number, serialization
// failure or a concurrent modification of the same order.
var ErrConflict = errors.New("conflicting concurrent modification")

// ErrOrderNumberTaken is the one conflict order creation retries: another
// transaction committed the same order number first.
var ErrOrderNumberTaken = fmt.Errorf("%w: order number already taken", ErrConflict)

// AppError carries an HTTP-ish status code and a safe message around an
// underlying store error. The wrapped error is for logs only.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
