package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any *AppError with the same code, so errors.Is(err, ErrStillAlive()) works.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Will registry & claims (WILL) ----

// ErrNoWill is returned to an owner acting on a will they never registered.
func ErrNoWill() *AppError {
	return New("WILL_001", "No will found", http.StatusNotFound)
}

// ErrNotFound is returned when the referenced owner has no will.
func ErrNotFound(entity string) *AppError {
	return New("WILL_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUnauthorized() *AppError {
	return New("WILL_002", "Unauthorized", http.StatusForbidden)
}

func ErrStillAlive() *AppError {
	return New("WILL_003", "Owner is still alive", http.StatusConflict)
}

// Validation returns a WILL_004 validation error.
func Validation(message string) *AppError {
	return New("WILL_004", message, http.StatusBadRequest)
}

// ---- Key derivation (KEY) ----

func ErrAccessDenied() *AppError {
	return New("KEY_001", "Access denied", http.StatusForbidden)
}

func ErrDerivationUnavailable(err error) *AppError {
	return Wrap("KEY_002", "Key derivation service unavailable", http.StatusServiceUnavailable, err)
}

// ---- Bitcoin network (BTC) ----

func ErrBitcoinUnavailable(err error) *AppError {
	return Wrap("BTC_001", "Bitcoin network query failed", http.StatusServiceUnavailable, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
