package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/validator"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	mockUC "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var portalNow = time.Date(2026, time.October, 16, 3, 5, 0, 0, time.UTC)

type portalHandlerFixtures struct {
	handler  *PortalHandler
	session  *mockUC.MockSessionUsecase
	devices  *mockUC.MockDeviceUsecase
	notifier *mockUC.MockNotificationUsecase
}

func createTestPortalHandler(t *testing.T) portalHandlerFixtures {
	fx := portalHandlerFixtures{
		session:  mockUC.NewMockSessionUsecase(t),
		devices:  mockUC.NewMockDeviceUsecase(t),
		notifier: mockUC.NewMockNotificationUsecase(t),
	}
	fx.handler = NewPortalHandler(PortalHandlerParams{
		SessionUC:      fx.session,
		DeviceUC:       fx.devices,
		NotificationUC: fx.notifier,
		Clock:          func() time.Time { return portalNow },
		Logger:         slog.Default(),
	})

	return fx
}

// newTestContext builds an echo context with the validator installed and,
// when deviceID is set, a customer session.
func newTestContext(method, target, body, deviceID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if deviceID != "" {
		middleware.SetSession(c, "6281234567890", deviceID, entity.Roles{entity.RoleCustomer})
	}

	return c, rec
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestPortalHandler_Login(t *testing.T) {
	fx := createTestPortalHandler(t)

	fx.session.EXPECT().Login(mock.Anything, "081234567890").Return(&usecase.LoginOutput{OTPRequired: true}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/login", `{"customerNumber":"081234567890"}`, "")
	require.NoError(t, fx.handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"otpRequired":true`)
	assert.NotContains(t, rec.Body.String(), `"token"`)
}

func TestPortalHandler_Login_UnknownCustomer(t *testing.T) {
	fx := createTestPortalHandler(t)

	fx.session.EXPECT().Login(mock.Anything, "089999").Return(nil, domainerrors.ErrCustomerNotFound)

	c, rec := newTestContext(http.MethodPost, "/api/login", `{"customerNumber":"089999"}`, "")
	require.NoError(t, fx.handler.Login(c))

	assert.Equal(t, domainerrors.ErrCustomerNotFound.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrCustomerNotFound.ErrorCode(), decodeError(t, rec).Error.Code)
}

func TestPortalHandler_Login_MissingNumber(t *testing.T) {
	fx := createTestPortalHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/login", `{}`, "")
	require.NoError(t, fx.handler.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestPortalHandler_VerifyOTP(t *testing.T) {
	fx := createTestPortalHandler(t)

	fx.session.EXPECT().VerifyOTP(mock.Anything, "081234567890", "123456").
		Return(&usecase.SessionOutput{Token: "jwt", Role: entity.RoleCustomer}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/verify-otp", `{"customerNumber":"081234567890","otp":"123456"}`, "")
	require.NoError(t, fx.handler.VerifyOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"jwt"`)
	assert.Contains(t, rec.Body.String(), `"role":"customer"`)
}

func TestPortalHandler_Dashboard(t *testing.T) {
	fx := createTestPortalHandler(t)

	fx.devices.EXPECT().Snapshot(mock.Anything, "dev-1").Return(&entity.DeviceSnapshot{ID: "dev-1", SSID2G: "Rumah"}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/dashboard", "", "dev-1")
	require.NoError(t, fx.handler.Dashboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ssid2G":"Rumah"`)
}

func TestPortalHandler_Dashboard_NoSession(t *testing.T) {
	fx := createTestPortalHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/dashboard", "", "")
	require.NoError(t, fx.handler.Dashboard(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPortalHandler_Dashboard_ACSDown(t *testing.T) {
	fx := createTestPortalHandler(t)

	fx.devices.EXPECT().Snapshot(mock.Anything, "dev-1").
		Return(nil, domainerrors.NewUpstreamError("ACS", errors.New("connection refused"), ""))

	c, rec := newTestContext(http.MethodGet, "/api/dashboard", "", "dev-1")
	require.NoError(t, fx.handler.Dashboard(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestPortalHandler_ConnectedDevices_Empty(t *testing.T) {
	fx := createTestPortalHandler(t)

	fx.devices.EXPECT().ConnectedHosts(mock.Anything, "dev-1").Return(nil, nil)

	c, rec := newTestContext(http.MethodGet, "/api/connected-devices", "", "dev-1")
	require.NoError(t, fx.handler.ConnectedDevices(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestPortalHandler_UpdateWiFi(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		callUC     bool
	}{
		{name: "ssid only", body: `{"ssid2G":"Rumah Baru"}`, wantStatus: http.StatusOK, callUC: true},
		{name: "ssid too long", body: `{"ssid2G":"` + strings.Repeat("a", 33) + `"}`, wantStatus: http.StatusBadRequest},
		{name: "password too short", body: `{"password5G":"1234567"}`, wantStatus: http.StatusBadRequest},
		{name: "password too long", body: `{"password2G":"` + strings.Repeat("p", 64) + `"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPortalHandler(t)
			if tt.callUC {
				fx.devices.EXPECT().UpdateWiFi(mock.Anything, "dev-1", entity.WiFiUpdate{SSID2G: "Rumah Baru"}).
					Return("SSID 2.4G berhasil diubah", nil)
			}

			c, rec := newTestContext(http.MethodPost, "/api/wifi", tt.body, "dev-1")
			require.NoError(t, fx.handler.UpdateWiFi(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPortalHandler_UpdateWiFi_NoChanges(t *testing.T) {
	fx := createTestPortalHandler(t)

	fx.devices.EXPECT().UpdateWiFi(mock.Anything, "dev-1", entity.WiFiUpdate{}).Return("", domainerrors.ErrNoWiFiChanges)

	c, rec := newTestContext(http.MethodPost, "/api/wifi", `{}`, "dev-1")
	require.NoError(t, fx.handler.UpdateWiFi(c))

	assert.Equal(t, domainerrors.ErrNoWiFiChanges.HTTPCode(), rec.Code)
}

func TestPortalHandler_WiFiQRCode(t *testing.T) {
	fx := createTestPortalHandler(t)

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.devices.EXPECT().WiFiQRCode(mock.Anything, "dev-1", entity.Band5G, "rahasia123").Return(png, nil)

	c, rec := newTestContext(http.MethodPost, "/api/wifi/qr", `{"band":"5g","password":"rahasia123"}`, "dev-1")
	require.NoError(t, fx.handler.WiFiQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestPortalHandler_WiFiQRCode_BadBand(t *testing.T) {
	fx := createTestPortalHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/wifi/qr", `{"band":"6g"}`, "dev-1")
	require.NoError(t, fx.handler.WiFiQRCode(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPortalHandler_RebootAndRefresh(t *testing.T) {
	fx := createTestPortalHandler(t)

	fx.devices.EXPECT().Reboot(mock.Anything, "dev-1").Return(nil)
	fx.devices.EXPECT().Refresh(mock.Anything, "dev-1").Return(nil)

	c, rec := newTestContext(http.MethodPost, "/api/reboot", "", "dev-1")
	require.NoError(t, fx.handler.Reboot(c))
	assert.Contains(t, rec.Body.String(), msgRebootSent)

	c, rec = newTestContext(http.MethodPost, "/api/refresh", "", "dev-1")
	require.NoError(t, fx.handler.Refresh(c))
	assert.Contains(t, rec.Body.String(), msgRefreshed)
}

func TestPortalHandler_TroubleReport(t *testing.T) {
	fx := createTestPortalHandler(t)

	rx := -24.5
	fx.devices.EXPECT().Snapshot(mock.Anything, "dev-1").Return(&entity.DeviceSnapshot{
		PPPUsername: "budi@isp",
		Clients2G:   3,
		Clients5G:   1,
		RXPower:     &rx,
	}, nil)
	fx.notifier.EXPECT().ReportTrouble(mock.Anything, entity.TroubleReport{
		CustomerNumber: "6281234567890",
		PPPUsername:    "budi@isp",
		RXPower:        "-24.50 dBm",
		Clients2G:      3,
		Clients5G:      1,
		Category:       "Internet lambat",
		Note:           "sejak pagi",
		ReportedAt:     portalNow,
	}).Return(usecase.TroubleReportResult{AdminSent: true, GroupSent: true}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/trouble-report", `{"category":"Internet lambat","note":"sejak pagi"}`, "dev-1")
	require.NoError(t, fx.handler.TroubleReport(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgTroubleSent)
}

func TestPortalHandler_TroubleReport_Failures(t *testing.T) {
	tests := []struct {
		name       string
		result     usecase.TroubleReportResult
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "admin not configured",
			err:        domainerrors.ErrAdminNotConfigured,
			wantStatus: domainerrors.ErrAdminNotConfigured.HTTPCode(),
		},
		{
			name:       "admin leg failed",
			err:        errors.New("gateway down"),
			wantStatus: domainerrors.ErrGatewayDeliveryFailed.HTTPCode(),
			wantDetail: msgAdminLegFailed,
		},
		{
			name:       "group leg failed",
			result:     usecase.TroubleReportResult{AdminSent: true},
			err:        errors.New("gateway down"),
			wantStatus: domainerrors.ErrGatewayDeliveryFailed.HTTPCode(),
			wantDetail: msgGroupLegFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPortalHandler(t)

			fx.devices.EXPECT().Snapshot(mock.Anything, "dev-1").Return(nil, domainerrors.ErrDeviceNotFound)
			fx.notifier.EXPECT().ReportTrouble(mock.Anything, mock.Anything).Return(tt.result, tt.err)

			c, rec := newTestContext(http.MethodPost, "/api/trouble-report", `{"category":"Tidak ada sinyal"}`, "dev-1")
			require.NoError(t, fx.handler.TroubleReport(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeError(t, rec).Error.Message)
			}
		})
	}
}
