package errors

import (
	"net/http"

	"zeneasy/internal/errors"
)

// AppError is an error that is safe to show to API clients.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string // stable machine readable code, e.g. "USER_NOT_FOUND"
	Message() string
}

// Kind is a predefined AppError. Kinds are compared by identity, so wrap them
// with WrapMessage rather than copying.
type Kind struct {
	status  int
	code    string
	message string
}

func newKind(status int, code, message string) *Kind {
	return &Kind{status: status, code: code, message: message}
}

func (k *Kind) Error() string     { return k.message }
func (k *Kind) HTTPCode() int     { return k.status }
func (k *Kind) ErrorCode() string { return k.code }
func (k *Kind) Message() string   { return k.message }

// WrapMessage adds internal context. Clients still only see the kind's message.
func (k *Kind) WrapMessage(message string) error {
	return errors.Wrap(k, message)
}

var (
	ErrValidationFailed = newKind(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")

	// Users and verification
	ErrUserNotFound        = newKind(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserNotVerified     = newKind(http.StatusForbidden, "USER_NOT_VERIFIED", "Account email has not been verified")
	ErrUserInactive        = newKind(http.StatusForbidden, "USER_INACTIVE", "Account is inactive")
	ErrNotResourceOwner    = newKind(http.StatusForbidden, "NOT_RESOURCE_OWNER", "You are not allowed to modify this resource")
	ErrOTPInvalid          = newKind(http.StatusBadRequest, "OTP_INVALID", "Invalid verification code")
	ErrOTPAttemptsExceeded = newKind(http.StatusTooManyRequests, "OTP_ATTEMPTS_EXCEEDED", "Too many verification attempts, request a new code later")
	ErrEmailDeliveryFailed = newKind(http.StatusBadGateway, "EMAIL_DELIVERY_FAILED", "Failed to deliver the verification email")
	ErrInvalidCredentials  = newKind(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")

	// Listings
	ErrOwnerNotFound   = newKind(http.StatusConflict, "OWNER_NOT_FOUND", "Owner not found, the record was not created")
	ErrRentNotFound    = newKind(http.StatusNotFound, "RENT_NOT_FOUND", "Rent listing not found")
	ErrServiceNotFound = newKind(http.StatusNotFound, "SERVICE_NOT_FOUND", "Service profile not found")
	ErrRatingDuplicate = newKind(http.StatusConflict, "RATING_DUPLICATE", "You have already rated this service")

	ErrDeviceNotFound    = newKind(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")
	ErrUploadFailed      = newKind(http.StatusBadGateway, "UPLOAD_FAILED", "Failed to store the uploaded file")
	ErrTransactionFailed = newKind(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed")
)

// DatabaseError hides a driver failure behind a generic 500 while keeping
// the cause for logs and errors.Is.
type DatabaseError struct {
	cause error
	op    string
}

func NewDatabaseError(cause error, op string) *DatabaseError {
	return &DatabaseError{cause: cause, op: op}
}

func (e *DatabaseError) Error() string     { return e.op + ": " + e.cause.Error() }
func (e *DatabaseError) Unwrap() error     { return e.cause }
func (e *DatabaseError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseError) Message() string   { return "Database execution failed" }
