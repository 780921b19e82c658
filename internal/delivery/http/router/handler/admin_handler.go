package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	msgDeviceRefreshed  = "Device refreshed successfully"
	msgCustomerNumber   = "Nomor pelanggan berhasil diupdate"
	msgCustomerName     = "Nama pelanggan berhasil diupdate"
	msgGatewayTested    = "Test berhasil"
	msgGroupTested      = "Test ke group berhasil"
	msgGatewayTestError = "Gagal mengirim pesan test"
	msgGroupTestError   = "Gagal mengirim pesan test ke group"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	SessionUC      usecase.SessionUsecase
	DeviceUC       usecase.DeviceUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// AdminHandler serves the staff API used by administrators and technicians.
type AdminHandler struct {
	sessionUC      usecase.SessionUsecase
	deviceUC       usecase.DeviceUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		sessionUC:      params.SessionUC,
		deviceUC:       params.DeviceUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// AdminLoginRequest represents the request body for staff login
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CustomerNumberRequest carries the new customer number of a device.
type CustomerNumberRequest struct {
	CustomerNumber string `json:"customerNumber" validate:"required,numeric,max=20"`
}

// CustomerNameRequest carries the new customer name of a device.
type CustomerNameRequest struct {
	CustomerName string `json:"customerName" validate:"required,max=100"`
}

// RefreshAllResponse reports the outcome of a fleet-wide refresh.
type RefreshAllResponse struct {
	Message string `json:"message"`
	entity.RefreshTally
}

// deviceParam returns the :id path segment. GenieACS ids may contain escaped
// characters, so the segment is unescaped once.
func deviceParam(c echo.Context) (string, bool) {
	raw := c.Param("id")
	id, err := url.PathUnescape(raw)
	if err != nil {
		id = raw
	}

	return id, id != ""
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.sessionUC.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{Token: out.Token, Role: out.Role})
}

// Devices handles GET /api/admin/devices.
func (h *AdminHandler) Devices(c echo.Context) error {
	snaps, err := h.deviceUC.ListSnapshots(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if snaps == nil {
		snaps = []entity.DeviceSnapshot{}
	}

	return response.Success(c, http.StatusOK, snaps)
}

// RefreshDevice handles POST /api/admin/devices/:id/refresh.
func (h *AdminHandler) RefreshDevice(c echo.Context) error {
	deviceID, ok := deviceParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Device ID tidak valid")
	}

	if err := h.deviceUC.Refresh(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, msgDeviceRefreshed)
}

// RefreshAll handles POST /api/admin/refresh-all.
func (h *AdminHandler) RefreshAll(c echo.Context) error {
	tally, err := h.deviceUC.RefreshAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RefreshAllResponse{
		Message:      fmt.Sprintf("Refresh completed. Success: %d, Failed: %d", tally.Successful, tally.Failed),
		RefreshTally: tally,
	})
}

// SetCustomerNumber handles POST /api/admin/devices/:id/customer-number.
func (h *AdminHandler) SetCustomerNumber(c echo.Context) error {
	deviceID, ok := deviceParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Device ID tidak valid")
	}

	var req CustomerNumberRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.deviceUC.SetCustomerNumber(c.Request().Context(), deviceID, req.CustomerNumber); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, msgCustomerNumber)
}

// SetCustomerName handles POST /api/admin/devices/:id/customer-name.
func (h *AdminHandler) SetCustomerName(c echo.Context) error {
	deviceID, ok := deviceParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Device ID tidak valid")
	}

	var req CustomerNameRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.deviceUC.SetCustomerName(c.Request().Context(), deviceID, req.CustomerName); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, msgCustomerName)
}

// RebootDevice handles POST /api/admin/devices/:id/reboot.
func (h *AdminHandler) RebootDevice(c echo.Context) error {
	deviceID, ok := deviceParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Device ID tidak valid")
	}

	if err := h.deviceUC.Reboot(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, msgRebootSent)
}

// TestGateway handles POST /api/admin/test-gateway.
func (h *AdminHandler) TestGateway(c echo.Context) error {
	if err := h.notificationUC.TestGateway(c.Request().Context()); err != nil {
		return h.testFailed(c, err, msgGatewayTestError)
	}

	return response.Message(c, msgGatewayTested)
}

// TestGroup handles POST /api/admin/test-group.
func (h *AdminHandler) TestGroup(c echo.Context) error {
	if err := h.notificationUC.TestGroup(c.Request().Context()); err != nil {
		return h.testFailed(c, err, msgGroupTestError)
	}

	return response.Message(c, msgGroupTested)
}

// testFailed keeps configuration errors as they are and reports anything
// else as a delivery failure.
func (h *AdminHandler) testFailed(c echo.Context, err error, detail string) error {
	if errors.Is(err, domainerrors.ErrAdminNotConfigured) || errors.Is(err, domainerrors.ErrGroupNotConfigured) {
		return response.HandleAppError(c, err)
	}

	h.logger.Warn("Gateway test failed", slog.Any("error", err))

	return response.HandleAppError(c, domainerrors.ErrGatewayDeliveryFailed.WithDetails(detail))
}
