package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	"portal/internal/infra/metrics"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	msgInvalidWebhook  = "Invalid request format"
	msgGatewayDisabled = "gateway disabled, ignore message"
	msgReplySent       = "Message processed and response sent"
	msgIgnored         = "Message ignored"
	msgReplyFailed     = "Message processed but response delivery failed"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	BotUC          usecase.BotUsecase
	NotificationUC usecase.NotificationUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// WebhookHandler receives inbound chat messages from the WhatsApp gateways.
type WebhookHandler struct {
	botUC          usecase.BotUsecase
	notificationUC usecase.NotificationUsecase
	whatsapp       config.WhatsAppConfig
	logger         *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		botUC:          params.BotUC,
		notificationUC: params.NotificationUC,
		whatsapp:       params.Config.WhatsApp,
		logger:         params.Logger,
	}
}

// FonnteRequest is the Fonnte incoming message callback.
type FonnteRequest struct {
	Sender  string `json:"sender" form:"sender"`
	Message string `json:"message" form:"message"`
}

// WablasRequest is the Wablas incoming message callback.
type WablasRequest struct {
	Data struct {
		Phone   string `json:"phone"`
		Message string `json:"message"`
	} `json:"data"`
}

// MPWARequest is the MPWA incoming message callback.
type MPWARequest struct {
	From    string `json:"from" form:"from"`
	Message string `json:"message" form:"message"`
}

// FonnteValidation answers the GET probe Fonnte sends when the webhook URL is saved.
func (h *WebhookHandler) FonnteValidation(c echo.Context) error {
	return response.Webhook(c, http.StatusOK, true, "GET method for Fonnte webhook validation")
}

// Fonnte handles POST /webhook/fonnte.
func (h *WebhookHandler) Fonnte(c echo.Context) error {
	var req FonnteRequest
	if err := c.Bind(&req); err != nil {
		return h.reject(c, config.GatewayFonnte)
	}

	return h.process(c, config.GatewayFonnte, req.Sender, req.Message)
}

// Wablas handles POST /webhook/wablas.
func (h *WebhookHandler) Wablas(c echo.Context) error {
	var req WablasRequest
	if err := c.Bind(&req); err != nil {
		return h.reject(c, config.GatewayWablas)
	}

	return h.process(c, config.GatewayWablas, req.Data.Phone, req.Data.Message)
}

// MPWA handles POST /webhook/mpwa.
func (h *WebhookHandler) MPWA(c echo.Context) error {
	var req MPWARequest
	if err := c.Bind(&req); err != nil {
		return h.reject(c, config.GatewayMPWA)
	}

	return h.process(c, config.GatewayMPWA, req.From, req.Message)
}

func (h *WebhookHandler) reject(c echo.Context, gateway string) error {
	metrics.RecordWebhook(gateway, metrics.ResultError)
	return response.Webhook(c, http.StatusBadRequest, false, msgInvalidWebhook)
}

// process runs one inbound message through the bot and sends the reply back
// to the sender through the active gateway.
func (h *WebhookHandler) process(c echo.Context, gateway, sender, text string) error {
	sender = strings.TrimSpace(sender)
	if sender == "" || strings.TrimSpace(text) == "" {
		return h.reject(c, gateway)
	}

	if !h.whatsapp.AcceptsInbound(gateway) {
		metrics.RecordWebhook(gateway, metrics.ResultIgnored)
		return response.Webhook(c, http.StatusOK, true, gateway+" "+msgGatewayDisabled)
	}

	deliverycontext.EnrichLogger(c, slog.String("gateway", gateway))
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	reply, ok := h.botUC.HandleMessage(ctx, entity.InboundMessage{
		Gateway: gateway,
		Sender:  sender,
		Text:    text,
	})
	if !ok {
		metrics.RecordWebhook(gateway, metrics.ResultIgnored)
		return response.Webhook(c, http.StatusOK, true, msgIgnored)
	}

	if err := h.notificationUC.Send(ctx, sender, reply); err != nil {
		logger.Error("Failed to deliver bot reply", slog.String("sender", sender), slog.Any("error", err))
		metrics.RecordWebhook(gateway, metrics.ResultError)

		return response.Webhook(c, http.StatusOK, false, msgReplyFailed)
	}

	metrics.RecordWebhook(gateway, metrics.ResultSuccess)

	return response.Webhook(c, http.StatusOK, true, msgReplySent)
}
