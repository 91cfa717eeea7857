package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the stable classification an invoking interface (HTTP, consumer,
// CLI) can rely on to render a lifecycle error without guessing.
type Kind int

const (
	// KindValidation: malformed or missing input, e.g. empty rejection reason,
	// unknown door size.
	KindValidation Kind = iota
	// KindNotFound: referenced door/inspection/certification does not exist.
	KindNotFound
	// KindInvalidState: the operation is illegal in the current lifecycle
	// state, e.g. starting a second inspection.
	KindInvalidState
	// KindConflict: a concurrent mutation was detected, the caller may retry.
	KindConflict
	// KindDependency: a collaborator (storage, mailer, renderer) failed.
	KindDependency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidState:
		return "invalid_state"
	case KindConflict:
		return "conflict"
	case KindDependency:
		return "dependency_failure"
	}
	return "unknown"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Dependency(err error, format string, args ...any) *Error {
	return &Error{Kind: KindDependency, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// HTTPStatus maps an error to the status code the API should answer with.
// Unclassified errors are treated as internal.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidState:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	case KindDependency:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// UserMessage returns the message of a classified error, or a generic one so
// internal details never leak to the client.
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}
