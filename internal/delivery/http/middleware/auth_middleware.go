package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	keySubject  = "subject"
	keyDeviceID = "deviceID"
	keyRoles    = "roles"
)

// AuthMiddleware validates portal session tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Silakan login terlebih dahulu")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Format token harus Bearer")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "SESSION_INVALID", "Sesi tidak valid atau sudah berakhir")
		}

		SetSession(c, claims.Subject, claims.DeviceID, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole lets the request through when the session holds any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held := GetRoles(c)
			if !slices.ContainsFunc(roles, held.Contains) {
				return response.Forbidden(c, "FORBIDDEN", "Anda tidak memiliki akses")
			}

			return next(c)
		}
	}
}

// SetSession stores the authenticated session on the echo context.
func SetSession(c echo.Context, subject, deviceID string, roles entity.Roles) {
	c.Set(keySubject, subject)
	c.Set(keyDeviceID, deviceID)
	c.Set(keyRoles, roles)
	deliverycontext.EnrichLogger(c, slog.String("subject", subject), slog.String("device_id", deviceID))
}

// GetSubject returns the customer number or staff username of the session.
func GetSubject(c echo.Context) string {
	s, _ := c.Get(keySubject).(string)
	return s
}

// GetDeviceID returns the device bound to a customer session.
func GetDeviceID(c echo.Context) (string, bool) {
	id, ok := c.Get(keyDeviceID).(string)
	return id, ok && id != ""
}

// GetRoles returns the roles of the session.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(keyRoles).(entity.Roles)
	return roles
}
