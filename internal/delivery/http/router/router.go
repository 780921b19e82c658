// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/router/handler"
	"portal/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler      *handler.WebhookHandler
	PortalHandler       *handler.PortalHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler      *handler.WebhookHandler
	portalHandler       *handler.PortalHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler:      params.WebhookHandler,
		portalHandler:       params.PortalHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.Metrics())

	// Gateway callbacks, throttled per client IP
	webhookGroup := e.Group("/webhook")
	webhookGroup.Use(r.rateLimitMiddleware.Limit)
	{
		webhookGroup.GET("/fonnte", r.webhookHandler.FonnteValidation)
		webhookGroup.POST("/fonnte", r.webhookHandler.Fonnte)
		webhookGroup.POST("/wablas", r.webhookHandler.Wablas)
		webhookGroup.POST("/mpwa", r.webhookHandler.MPWA)
	}

	api := e.Group("/api")
	{
		api.POST("/login", r.portalHandler.Login)
		api.POST("/verify-otp", r.portalHandler.VerifyOTP)
		api.POST("/admin/login", r.adminHandler.Login)
	}

	// Customer routes, bound to the device of the session
	customerGroup := api.Group("")
	customerGroup.Use(r.authMiddleware.Authenticate)
	customerGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		customerGroup.GET("/dashboard", r.portalHandler.Dashboard)
		customerGroup.GET("/connected-devices", r.portalHandler.ConnectedDevices)
		customerGroup.POST("/wifi", r.portalHandler.UpdateWiFi)
		customerGroup.POST("/wifi/qr", r.portalHandler.WiFiQRCode)
		customerGroup.POST("/reboot", r.portalHandler.Reboot)
		customerGroup.POST("/refresh", r.portalHandler.Refresh)
		customerGroup.POST("/trouble-report", r.portalHandler.TroubleReport)
	}

	// Staff routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleTechnician))
	{
		adminGroup.GET("/devices", r.adminHandler.Devices)
		adminGroup.POST("/devices/:id/refresh", r.adminHandler.RefreshDevice)
		adminGroup.POST("/devices/:id/reboot", r.adminHandler.RebootDevice)
		adminGroup.POST("/devices/:id/customer-number", r.adminHandler.SetCustomerNumber)
		adminGroup.POST("/devices/:id/customer-name", r.adminHandler.SetCustomerName)
		adminGroup.POST("/refresh-all", r.adminHandler.RefreshAll)

		// Gateway configuration tests are for administrators only
		adminOnly := adminGroup.Group("")
		adminOnly.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
		adminOnly.POST("/test-gateway", r.adminHandler.TestGateway)
		adminOnly.POST("/test-group", r.adminHandler.TestGroup)
	}
}
