package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portal/config"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/infra/metrics"

	"go.uber.org/fx"
)

// noopSender is used when no gateway is active. It logs and reports failure
// so callers never believe a message went out.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) Name() string { return "none" }

func (s *noopSender) Send(_ context.Context, to, _ string) error {
	s.logger.Warn("[Gateway] No active WhatsApp gateway, dropping message",
		slog.String("to", to),
	)

	return errors.Wrap(ErrNotConfigured, "no active gateway")
}

// instrumentedSender records metrics and logs around a concrete gateway.
type instrumentedSender struct {
	next   service.MessageSender
	logger *slog.Logger
}

func (s *instrumentedSender) Name() string { return s.next.Name() }

func (s *instrumentedSender) Send(ctx context.Context, to, text string) error {
	start := time.Now()
	err := s.next.Send(ctx, to, text)
	metrics.RecordGatewaySend(s.next.Name(), err, time.Since(start))

	if err != nil {
		s.logger.Error("[Gateway] Send failed",
			slog.String("gateway", s.next.Name()),
			slog.String("to", to),
			slog.Any("error", err),
		)

		return err
	}

	s.logger.Debug("[Gateway] Message sent",
		slog.String("gateway", s.next.Name()),
		slog.String("to", to),
	)

	return nil
}

// SenderParams holds dependencies for MessageSender, injected by Fx.
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMessageSender selects the active gateway from configuration.
func NewMessageSender(params SenderParams) (service.MessageSender, error) {
	wa := params.Config.WhatsApp
	logger := params.Logger

	active := strings.ToLower(strings.TrimSpace(wa.Active))
	if active == "" {
		logger.Info("No WhatsApp gateway active, using no-op sender")

		return &noopSender{logger: logger}, nil
	}

	gw, ok := wa.Gateway(active)
	if !ok {
		return nil, errors.Errorf("unknown whatsapp gateway: %s", wa.Active)
	}

	client := &http.Client{Timeout: defaultTimeout}

	var sender service.MessageSender
	switch active {
	case config.GatewayFonnte:
		sender = NewFonnteSender(gw, client)
	case config.GatewayWablas:
		sender = NewWablasSender(gw, client)
	case config.GatewayMPWA:
		sender = NewMPWASender(gw, params.Config.Branding.ISPName, client)
	}

	logger.Info("Using WhatsApp gateway", slog.String("gateway", active))

	return &instrumentedSender{next: sender, logger: logger}, nil
}

// Module provides the outbound gateway.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMessageSender),
)
