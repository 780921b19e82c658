package entity

import "time"

// OTPEntry is a pending one-time login code.
type OTPEntry struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the code can no longer be used at now.
func (e OTPEntry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}
