package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// LoginOutput is the result of a customer login attempt.
type LoginOutput struct {
	// OTPRequired is set when a code was sent instead of a token.
	OTPRequired bool
	Token       string
	DeviceID    string
}

// SessionOutput is an issued portal session.
type SessionOutput struct {
	Token string
	Role  entity.Role
}

// SessionUsecase issues portal sessions for customers and staff.
type SessionUsecase interface {
	// Login resolves the customer's device and either sends an OTP or issues a token.
	Login(ctx context.Context, customerNumber string) (*LoginOutput, error)

	// VerifyOTP checks a pending code and issues a token.
	VerifyOTP(ctx context.Context, customerNumber, code string) (*SessionOutput, error)

	// AdminLogin checks administrator or technician credentials.
	AdminLogin(ctx context.Context, username, password string) (*SessionOutput, error)
}
