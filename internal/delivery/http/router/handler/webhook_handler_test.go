package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portal/config"
	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	mockUC "portal/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type webhookHandlerFixtures struct {
	handler  *WebhookHandler
	bot      *mockUC.MockBotUsecase
	notifier *mockUC.MockNotificationUsecase
}

func createTestWebhookHandler(t *testing.T, active string) webhookHandlerFixtures {
	cfg := &config.Config{}
	cfg.WhatsApp.Active = active
	cfg.WhatsApp.Gateways.MPWA.Enabled = true

	fx := webhookHandlerFixtures{
		bot:      mockUC.NewMockBotUsecase(t),
		notifier: mockUC.NewMockNotificationUsecase(t),
	}
	fx.handler = NewWebhookHandler(WebhookHandlerParams{
		BotUC:          fx.bot,
		NotificationUC: fx.notifier,
		Config:         cfg,
		Logger:         slog.Default(),
	})

	return fx
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, response.WebhookAck) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h(e.NewContext(req, rec)))

	var ack response.WebhookAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))

	return rec, ack
}

func TestWebhookHandler_FonnteRepliesThroughGateway(t *testing.T) {
	fx := createTestWebhookHandler(t, "fonnte")

	fx.bot.EXPECT().HandleMessage(mock.Anything, entity.InboundMessage{
		Gateway: "fonnte",
		Sender:  "6281234567890",
		Text:    "status",
	}).Return("reply text", true)
	fx.notifier.EXPECT().Send(mock.Anything, "6281234567890", "reply text").Return(nil)

	rec, ack := postJSON(t, fx.handler.Fonnte, `{"sender":"6281234567890","message":"status"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ack.Status)
	assert.Equal(t, msgReplySent, ack.Message)
}

func TestWebhookHandler_MissingFields(t *testing.T) {
	fx := createTestWebhookHandler(t, "fonnte")

	tests := []struct {
		name    string
		handler echo.HandlerFunc
		body    string
	}{
		{name: "fonnte without message", handler: fx.handler.Fonnte, body: `{"sender":"628123"}`},
		{name: "wablas without data", handler: fx.handler.Wablas, body: `{"phone":"628123","message":"status"}`},
		{name: "mpwa without sender", handler: fx.handler.MPWA, body: `{"message":"status"}`},
		{name: "malformed json", handler: fx.handler.Fonnte, body: `{"sender":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ack := postJSON(t, tt.handler, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, ack.Status)
		})
	}
}

func TestWebhookHandler_InactiveGatewayIsAcknowledged(t *testing.T) {
	fx := createTestWebhookHandler(t, "fonnte")

	rec, ack := postJSON(t, fx.handler.Wablas, `{"data":{"phone":"628123","message":"status"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ack.Status)
	assert.Contains(t, ack.Message, "disabled")
}

func TestWebhookHandler_EnabledSecondaryGateway(t *testing.T) {
	fx := createTestWebhookHandler(t, "fonnte")

	fx.bot.EXPECT().HandleMessage(mock.Anything, mock.MatchedBy(func(m entity.InboundMessage) bool {
		return m.Gateway == "mpwa" && m.Sender == "628123"
	})).Return("", false)

	rec, ack := postJSON(t, fx.handler.MPWA, `{"from":"628123","message":"hello there"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ack.Status)
	assert.Equal(t, msgIgnored, ack.Message)
}

func TestWebhookHandler_ReplyDeliveryFailure(t *testing.T) {
	fx := createTestWebhookHandler(t, "wablas")

	fx.bot.EXPECT().HandleMessage(mock.Anything, mock.Anything).Return("reply", true)
	fx.notifier.EXPECT().Send(mock.Anything, "628123", "reply").Return(errors.New("gateway down"))

	rec, ack := postJSON(t, fx.handler.Wablas, `{"data":{"phone":"628123","message":"status"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ack.Status)
}

func TestWebhookHandler_FonnteValidation(t *testing.T) {
	fx := createTestWebhookHandler(t, "")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/webhook/fonnte", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, fx.handler.FonnteValidation(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":true`)
}
