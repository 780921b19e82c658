package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/response"
	"portal/internal/delivery/http/validator"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	msgRebootSent     = "Perintah reboot berhasil dikirim"
	msgRefreshed      = "Device berhasil di-refresh"
	msgTroubleSent    = "Laporan gangguan berhasil dikirim"
	msgAdminLegFailed = "Gagal mengirim pesan ke admin."
	msgGroupLegFailed = "Gagal mengirim pesan ke group WhatsApp."
)

// PortalHandlerParams holds dependencies for PortalHandler, injected by Fx.
type PortalHandlerParams struct {
	fx.In

	SessionUC      usecase.SessionUsecase
	DeviceUC       usecase.DeviceUsecase
	NotificationUC usecase.NotificationUsecase
	Clock          service.Clock
	Logger         *slog.Logger
}

// PortalHandler serves the customer self-service API.
type PortalHandler struct {
	sessionUC      usecase.SessionUsecase
	deviceUC       usecase.DeviceUsecase
	notificationUC usecase.NotificationUsecase
	clock          service.Clock
	logger         *slog.Logger
}

// NewPortalHandler is the constructor for PortalHandler
func NewPortalHandler(params PortalHandlerParams) *PortalHandler {
	return &PortalHandler{
		sessionUC:      params.SessionUC,
		deviceUC:       params.DeviceUC,
		notificationUC: params.NotificationUC,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

// LoginRequest represents the request body for customer login
type LoginRequest struct {
	CustomerNumber string `json:"customerNumber" validate:"required,max=20"`
}

// LoginResponse tells the client whether to ask for an OTP next.
type LoginResponse struct {
	OTPRequired bool   `json:"otpRequired"`
	Token       string `json:"token,omitempty"`
	DeviceID    string `json:"deviceId,omitempty"`
}

// VerifyOTPRequest represents the request body for OTP verification
type VerifyOTPRequest struct {
	CustomerNumber string `json:"customerNumber" validate:"required,max=20"`
	OTP            string `json:"otp" validate:"required,numeric"`
}

// SessionResponse carries an issued session token.
type SessionResponse struct {
	Token string      `json:"token"`
	Role  entity.Role `json:"role"`
}

// WiFiRequest carries the optional WiFi fields. At least one must be set.
type WiFiRequest struct {
	SSID2G     string `json:"ssid2G" validate:"omitempty,max=32"`
	SSID5G     string `json:"ssid5G" validate:"omitempty,max=32"`
	Password2G string `json:"password2G" validate:"omitempty,min=8,max=63"`
	Password5G string `json:"password5G" validate:"omitempty,min=8,max=63"`
}

// WiFiQRRequest selects the band and passphrase encoded in the join code.
type WiFiQRRequest struct {
	Band     entity.WiFiBand `json:"band" validate:"required,oneof=2g 5g"`
	Password string          `json:"password" validate:"max=63"`
}

// TroubleReportRequest is a customer complaint filed from the dashboard.
type TroubleReportRequest struct {
	Category string `json:"category" validate:"required,max=100"`
	Note     string `json:"note" validate:"max=1000"`
}

// bindAndValidate reports false after writing the 400 response.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Format permintaan tidak valid")
	}
	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Data yang dikirim tidak valid", validator.Messages(err))
	}

	return true, nil
}

// Login handles POST /api/login.
func (h *PortalHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.sessionUC.Login(c.Request().Context(), req.CustomerNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		OTPRequired: out.OTPRequired,
		Token:       out.Token,
		DeviceID:    out.DeviceID,
	})
}

// VerifyOTP handles POST /api/verify-otp.
func (h *PortalHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.sessionUC.VerifyOTP(c.Request().Context(), req.CustomerNumber, req.OTP)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{Token: out.Token, Role: out.Role})
}

// Dashboard handles GET /api/dashboard.
func (h *PortalHandler) Dashboard(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionInvalid)
	}

	snap, err := h.deviceUC.Snapshot(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// ConnectedDevices handles GET /api/connected-devices.
func (h *PortalHandler) ConnectedDevices(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionInvalid)
	}

	hosts, err := h.deviceUC.ConnectedHosts(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if hosts == nil {
		hosts = []entity.ConnectedHost{}
	}

	return response.Success(c, http.StatusOK, hosts)
}

// UpdateWiFi handles POST /api/wifi.
func (h *PortalHandler) UpdateWiFi(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionInvalid)
	}

	var req WiFiRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	msg, err := h.deviceUC.UpdateWiFi(c.Request().Context(), deviceID, entity.WiFiUpdate{
		SSID2G:     req.SSID2G,
		SSID5G:     req.SSID5G,
		Password2G: req.Password2G,
		Password5G: req.Password5G,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, msg)
}

// WiFiQRCode handles POST /api/wifi/qr and answers with a PNG.
func (h *PortalHandler) WiFiQRCode(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionInvalid)
	}

	var req WiFiQRRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	png, err := h.deviceUC.WiFiQRCode(c.Request().Context(), deviceID, req.Band, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Reboot handles POST /api/reboot.
func (h *PortalHandler) Reboot(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionInvalid)
	}

	if err := h.deviceUC.Reboot(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, msgRebootSent)
}

// Refresh handles POST /api/refresh.
func (h *PortalHandler) Refresh(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionInvalid)
	}

	if err := h.deviceUC.Refresh(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, msgRefreshed)
}

// TroubleReport handles POST /api/trouble-report. Line details come from the
// device itself; a failed read still sends the report with what is known.
func (h *PortalHandler) TroubleReport(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrSessionInvalid)
	}

	var req TroubleReportRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx := c.Request().Context()
	report := entity.TroubleReport{
		CustomerNumber: middleware.GetSubject(c),
		Category:       req.Category,
		Note:           req.Note,
		ReportedAt:     h.clock(),
	}

	snap, err := h.deviceUC.Snapshot(ctx, deviceID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Trouble report without device details",
			slog.String("deviceID", deviceID), slog.Any("error", err))
	} else {
		report.PPPUsername = snap.PPPUsername
		report.Clients2G = snap.Clients2G
		report.Clients5G = snap.Clients5G
		if snap.RXPower != nil {
			report.RXPower = fmt.Sprintf("%.2f dBm", *snap.RXPower)
		}
	}

	result, err := h.notificationUC.ReportTrouble(ctx, report)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && !result.AdminSent {
			return response.HandleAppError(c, err)
		}

		detail := msgAdminLegFailed
		if result.AdminSent {
			detail = msgGroupLegFailed
		}

		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Trouble report delivery failed", slog.Any("error", err))
		failed := domainerrors.ErrGatewayDeliveryFailed

		return response.Error(c, failed.HTTPCode(), failed.ErrorCode(), detail, nil)
	}

	return response.Message(c, msgTroubleSent)
}
