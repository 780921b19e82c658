package repository

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOTPNotFound is returned when no pending code exists for a customer.
var ErrOTPNotFound = errors.New("otp not found")

// OTPRepository keeps pending login codes keyed by customer number.
// Expiry is enforced by the caller at verification time.
type OTPRepository interface {
	Save(ctx context.Context, customerNumber string, entry entity.OTPEntry) error
	Find(ctx context.Context, customerNumber string) (*entity.OTPEntry, error)
	Delete(ctx context.Context, customerNumber string) error
}
