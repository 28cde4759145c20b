package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Status maps a kind to the HTTP status reported to clients. Duplicate-key
// conflicts are reported as 400, like any other rejected input.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError is the typed failure raised by repositories, services and validators.
type AppError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(kind Kind, msg string, cause error) error {
	return pkgerrors.WithStack(&AppError{Kind: kind, Msg: msg, Err: cause})
}

func NewValidationError(msg string) error {
	return newAppError(KindValidation, msg, nil)
}

func NewUnauthorizedError(msg string) error {
	return newAppError(KindUnauthorized, msg, nil)
}

func NewForbiddenError(msg string) error {
	return newAppError(KindForbidden, msg, nil)
}

func NewNotFoundError(msg string) error {
	return newAppError(KindNotFound, msg, nil)
}

func NewConflictError(msg string, cause error) error {
	return newAppError(KindConflict, msg, cause)
}

// NewInternalError wraps an unexpected failure. The cause is kept for logs and
// never shown to clients.
func NewInternalError(msg string, cause error) error {
	return newAppError(KindInternal, msg, cause)
}

func IsValidationError(err error) bool {
	return KindOf(err) == KindValidation
}

func IsNotFoundError(err error) bool {
	return KindOf(err) == KindNotFound
}

// KindOf reports the kind of err. Anything that is not an AppError or a
// ValidationErrors is internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var validationErrors *ValidationErrors
	if errors.As(err, &validationErrors) {
		return KindValidation
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func StatusOf(err error) int {
	return KindOf(err).Status()
}

// PublicMessage is the message safe to return to a client.
func PublicMessage(err error) string {
	var validationErrors *ValidationErrors
	if errors.As(err, &validationErrors) {
		return "Validation errors occurred"
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Msg
	}
	return "Internal server error"
}

// StackTrace renders err with the stack recorded where it was created.
func StackTrace(err error) string {
	return fmt.Sprintf("%+v", err)
}

type ValidationErrors struct {
	Errors []error
}

func (ve *ValidationErrors) Error() string {
	errorMessages := ve.Messages()
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(errorMessages, "; "))
}

func (ve *ValidationErrors) Add(err error) {
	ve.Errors = append(ve.Errors, err)
}

func (ve *ValidationErrors) Messages() []string {
	errorMessages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		errorMessages[i] = PublicMessage(err)
	}
	return errorMessages
}

// ErrOrNil returns nil when nothing was collected, a single error when one
// was, and the aggregate otherwise.
func (ve *ValidationErrors) ErrOrNil() error {
	switch len(ve.Errors) {
	case 0:
		return nil
	case 1:
		return ve.Errors[0]
	default:
		return ve
	}
}

func IsValidationErrors(err error) bool {
	var validationErrors *ValidationErrors
	return errors.As(err, &validationErrors)
}

// Messages returns every client-facing message carried by err.
func Messages(err error) []string {
	var validationErrors *ValidationErrors
	if errors.As(err, &validationErrors) {
		return validationErrors.Messages()
	}
	return nil
}
