package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for portal session tokens. The subject is
// the customer number for customers and the username for staff.
type Claims struct {
	DeviceID string   `json:"deviceId,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates portal session tokens.
type TokenService interface {
	// GenerateToken signs a session for subject. deviceID is empty for staff sessions.
	GenerateToken(subject, deviceID string, roles []string) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
