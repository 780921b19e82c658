package gateway

import (
	"context"
	"net/http"

	"portal/config"
	"portal/internal/domain/service"
	"portal/internal/errors"
)

type fonnteSender struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewFonnteSender delivers through api.fonnte.com. Success is any 2xx answer.
func NewFonnteSender(cfg config.GatewayConfig, client *http.Client) service.MessageSender {
	return &fonnteSender{
		endpoint: cfg.ServerURL,
		token:    cfg.Token,
		client:   httpClientOrDefault(client),
	}
}

func (s *fonnteSender) Name() string { return config.GatewayFonnte }

func (s *fonnteSender) Send(ctx context.Context, to, text string) error {
	if s.token == "" {
		return errors.Wrap(ErrNotConfigured, "fonnte token is empty")
	}

	status, raw, err := postJSON(ctx, s.client, s.endpoint,
		map[string]string{"Authorization": s.token},
		map[string]string{"target": to, "message": text},
	)
	if err != nil {
		return errors.Wrap(err, "fonnte send")
	}
	if status < 200 || status >= 300 {
		return rejected(status, raw)
	}

	return nil
}
