package errors

import (
	"net/http"

	"portal/internal/errors"
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
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying extra detail for the response body.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business code so WithDetails copies still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Perangkat tidak ditemukan",
		"",
	)

	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Nomor pelanggan tidak terdaftar",
		"",
	)

	ErrACSUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ACS_UNAVAILABLE",
		"Server ACS tidak dapat dihubungi",
		"",
	)

	ErrInvalidCustomerNumber = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CUSTOMER_NUMBER",
		"Nomor pelanggan hanya boleh berisi angka",
		"",
	)

	ErrNoWiFiChanges = NewBaseError(
		http.StatusBadRequest,
		"NO_WIFI_CHANGES",
		"Tidak ada perubahan yang dikirim",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Username atau password salah",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OTP",
		"OTP tidak valid atau kadaluarsa",
		"",
	)

	ErrOTPDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"OTP_DELIVERY_FAILED",
		"Gagal mengirim OTP ke WhatsApp",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Sesi tidak valid atau sudah berakhir",
		"",
	)

	// Messaging-related errors
	ErrAdminNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"ADMIN_NOT_CONFIGURED",
		"Nomor admin belum dikonfigurasi",
		"",
	)

	ErrGroupNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"GROUP_NOT_CONFIGURED",
		"Grup WhatsApp belum dikonfigurasi",
		"",
	)

	ErrGatewayDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"GATEWAY_DELIVERY_FAILED",
		"Gagal mengirim pesan melalui gateway WhatsApp",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Data yang dikirim tidak valid",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Terjadi kesalahan pada sistem",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Akses ditolak",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Data tidak ditemukan",
		"",
	)
)

// UpstreamError reports a failed call to an external system (ACS, router, gateway).
type UpstreamError struct {
	err     error
	system  string
	details string
}

// NewUpstreamError creates an upstream failure error
func NewUpstreamError(system string, err error, details string) AppError {
	return &UpstreamError{
		err:     err,
		system:  system,
		details: details,
	}
}

func (e *UpstreamError) Error() string {
	return errors.Wrapf(e.err, "%s request failed", e.system).Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.err
}

func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILED"
}

func (e *UpstreamError) Message() string {
	return "Layanan " + e.system + " sedang bermasalah"
}

func (e *UpstreamError) Details() string {
	return e.details
}
