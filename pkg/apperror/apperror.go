package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrMalformedRow     = errors.New("malformed row")
	ErrRenderingFailure = errors.New("rendering failure")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrInternal         = errors.New("internal server error")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

// NewStoreUnavailable covers both failed queries and a connection pool that
// could not supply a connection within its acquisition timeout.
func NewStoreUnavailable(details string, err error) *AppError {
	return NewAppError(ErrStoreUnavailable, "Data store is unavailable", details, err)
}

// NewMalformedRow marks a single row that could not be minimally decoded.
// It is recovered locally (the row is skipped), never surfaced to callers.
func NewMalformedRow(details string, err error) *AppError {
	return NewAppError(ErrMalformedRow, "Row could not be decoded", details, err)
}

func NewRenderingFailure(details string, err error) *AppError {
	return NewAppError(ErrRenderingFailure, "Failed to render response", details, err)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
}
