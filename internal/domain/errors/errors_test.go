package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrDeviceNotFound.WithDetails("id=abc")

	assert.True(t, stderrors.Is(detailed, ErrDeviceNotFound))
	assert.False(t, stderrors.Is(detailed, ErrInvalidOTP))
	assert.Equal(t, "id=abc", detailed.Details())
	assert.Equal(t, http.StatusNotFound, detailed.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrInvalidOTP.WrapMessage("verify 0812")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "INVALID_OTP", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "verify 0812")
}

func TestUpstreamError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewUpstreamError("ACS", cause, "GET /devices")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Equal(t, "Layanan ACS sedang bermasalah", err.Message())
	assert.Contains(t, err.Error(), "ACS request failed")
}
