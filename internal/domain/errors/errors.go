package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors carrying the same business code, so WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Map data errors
	ErrImageFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_FETCH_FAILED",
		"تعذّر تحميل صورة العرض",
		"",
	)

	ErrQueryFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"QUERY_FAILED",
		"تعذّر تحميل العروض",
		"",
	)

	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"العرض غير موجود",
		"",
	)

	ErrNoSavedOffers = NewBaseError(
		http.StatusNotFound,
		"NO_SAVED_OFFERS",
		"لا توجد عروض محفوظة",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"انتهت صلاحية جلسة الخريطة",
		"",
	)

	// Geolocation errors
	ErrGeolocationDenied = NewBaseError(
		http.StatusOK,
		"GEOLOCATION_DENIED",
		"تم رفض الوصول إلى موقعك",
		"",
	)

	ErrGeolocationUnavailable = NewBaseError(
		http.StatusOK,
		"GEOLOCATION_UNAVAILABLE",
		"تعذّر تحديد موقعك.",
		"",
	)

	// Authentication-related errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"الرجاء تسجيل الدخول",
		"/login",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"رمز الدخول غير صالح",
		"",
	)

	// Proxy errors
	ErrMissingImageURL = NewBaseError(
		http.StatusBadRequest,
		"MISSING_URL",
		"Missing url parameter",
		"",
	)

	ErrUpstreamFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPSTREAM_FETCH_FAILED",
		"Failed to fetch image",
		"",
	)

	// Basemap errors
	ErrTileNotFound = NewBaseError(
		http.StatusNotFound,
		"TILE_NOT_FOUND",
		"Tile not found",
		"",
	)

	ErrBasemapDisabled = NewBaseError(
		http.StatusNotFound,
		"BASEMAP_DISABLED",
		"Basemap tiles are not served",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"بيانات غير صالحة",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"خطأ داخلي في النظام",
		"",
	)
)

// DocumentStoreError represents a document store failure, implementing the AppError interface
type DocumentStoreError struct {
	err     error
	details string
}

// NewDocumentStoreError creates a document store error
func NewDocumentStoreError(err error, details string) AppError {
	return &DocumentStoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DocumentStoreError) Error() string {
	return errors.Wrap(e.err, "document store operation failed").Error()
}

// Unwrap exposes the underlying store error
func (e *DocumentStoreError) Unwrap() error {
	return e.err
}

// Is reports document store failures as query failures
func (e *DocumentStoreError) Is(target error) bool {
	return target == ErrQueryFailed
}

// HTTPCode returns the HTTP status code
func (e *DocumentStoreError) HTTPCode() int {
	return ErrQueryFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *DocumentStoreError) ErrorCode() string {
	return ErrQueryFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *DocumentStoreError) Message() string {
	return ErrQueryFailed.Message()
}

// Details returns detailed error information
func (e *DocumentStoreError) Details() string {
	return e.details
}
