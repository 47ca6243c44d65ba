// Package errors defines the catalog's user-facing failures. Each one maps to
// an HTTP status and a stable machine-readable code.
package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/errors"
)

// AppError is an error the delivery layer can render without inspecting it
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// CatalogError is a coded failure with an optional detail line
type CatalogError struct {
	status  int
	code    string
	message string
	details string
}

func newCatalogError(status int, code, message string) *CatalogError {
	return &CatalogError{status: status, code: code, message: message}
}

func (e *CatalogError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *CatalogError) HTTPCode() int     { return e.status }
func (e *CatalogError) ErrorCode() string { return e.code }
func (e *CatalogError) Message() string   { return e.message }
func (e *CatalogError) Details() string   { return e.details }

// Is compares codes, so a copy made by WithDetails still matches its sentinel.
func (e *CatalogError) Is(target error) bool {
	t, ok := target.(*CatalogError)

	return ok && t.code == e.code
}

// WithDetails returns a copy of e carrying details
func (e *CatalogError) WithDetails(details string) *CatalogError {
	dup := *e
	dup.details = details

	return &dup
}

// WrapMessage wraps e with a stack and context message
func (e *CatalogError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

var (
	ErrStoreNotFound = newCatalogError(http.StatusNotFound, "STORE_NOT_FOUND", "Store not found")

	ErrNotStoreOwner = newCatalogError(http.StatusForbidden, "NOT_STORE_OWNER",
		"You must own a store in order to edit it")

	// Two writers raced for the same slug and the retries ran out
	ErrSlugConflict = newCatalogError(http.StatusConflict, "SLUG_CONFLICT",
		"Another store took this name at the same time, please retry")

	ErrPageOutOfRange = newCatalogError(http.StatusNotFound, "PAGE_OUT_OF_RANGE",
		"The requested page does not exist")

	ErrValidationFailed = newCatalogError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")

	ErrUnauthorized = newCatalogError(http.StatusUnauthorized, "UNAUTHORIZED", "A signed-in user is required")

	ErrTransactionFailed = newCatalogError(http.StatusInternalServerError, "TRANSACTION_FAILED",
		"Database transaction failed")
)

// PageOutOfRangeError reports a listing page past the last one. It unwraps
// to ErrPageOutOfRange.
type PageOutOfRangeError struct {
	Requested int
	Last      int
}

func (e *PageOutOfRangeError) Error() string {
	return fmt.Sprintf("page %d is out of range, last page is %d", e.Requested, e.Last)
}

func (e *PageOutOfRangeError) Unwrap() error {
	return ErrPageOutOfRange.WithDetails(fmt.Sprintf("last page is %d", e.Last))
}

// DatabaseExecuteError hides a driver failure behind a generic 500. The
// driver error stays reachable through Unwrap for logging.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a driver error, details names the failed operation
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }

func (e *DatabaseExecuteError) Error() string {
	return fmt.Sprintf("%s: %v", e.details, e.err)
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
