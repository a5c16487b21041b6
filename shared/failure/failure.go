package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so callers can react without parsing messages.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindIllegalState Kind = "illegal_state"
	KindDependency   Kind = "dependency"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// Failure is a wrapper for error kinds and messages using standard HTTP response codes.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a new Failure for malformed or missing input.
func Validation(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// BadRequest returns a validation Failure with message derived from an error interface.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindValidation,
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// Conflict returns a new Failure for occupied slots, insufficient stock and similar
// situations the caller may retry with different parameters.
func Conflict(msg string) error {
	return &Failure{
		Kind:    KindConflict,
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// NotFound returns a new Failure for an absent entity.
func NotFound(msg string) error {
	return &Failure{
		Kind:    KindNotFound,
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// IllegalState returns a new Failure for an operation that is not valid for the
// entity's current lifecycle state.
func IllegalState(msg string) error {
	return &Failure{
		Kind:    KindIllegalState,
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
	}
}

// Dependency returns a new Failure for a synchronous collaborator call that failed.
func Dependency(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindDependency,
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		}
	}

	return nil
}

// Unauthorized returns a new Failure for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Kind:    KindUnauthorized,
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the HTTP status code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the Kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether the error carries the given Kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
