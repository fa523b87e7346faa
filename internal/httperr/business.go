package httperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindValidation      Kind = "validation"
	KindUnauthorized    Kind = "unauthorized"
	KindUnauthenticated Kind = "unauthenticated"
	KindOperationFailed Kind = "operation_failed"
)

type BusinessError struct {
	Kind  Kind
	Code  string
	Cause error
}

func (e BusinessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Cause)
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Cause
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrUnauthorized(code string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code}
}

func ErrUnauthenticated(code string) error {
	return BusinessError{Kind: KindUnauthenticated, Code: code}
}

func ErrOperationFailed(cause error) error {
	return BusinessError{Kind: KindOperationFailed, Code: "operation_failed", Cause: cause}
}

// AsBusiness leaves business errors untouched and wraps anything else as
// OperationFailed. Used at transaction boundaries.
func AsBusiness(err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return be
	}
	return ErrOperationFailed(err)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
