package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"portal/config"
	"portal/internal/domain/service"
	"portal/internal/errors"
)

type wablasSender struct {
	serverURL string
	token     string
	client    *http.Client
}

type wablasResponse struct {
	Status bool `json:"status"`
}

// NewWablasSender delivers through a Wablas server. Success requires
// "status": true in the JSON answer.
func NewWablasSender(cfg config.GatewayConfig, client *http.Client) service.MessageSender {
	return &wablasSender{
		serverURL: strings.TrimRight(cfg.ServerURL, "/"),
		token:     cfg.Token,
		client:    httpClientOrDefault(client),
	}
}

func (s *wablasSender) Name() string { return config.GatewayWablas }

func (s *wablasSender) Send(ctx context.Context, to, text string) error {
	if s.token == "" || s.serverURL == "" {
		return errors.Wrap(ErrNotConfigured, "wablas token or server url is empty")
	}

	status, raw, err := postJSON(ctx, s.client, s.serverURL+"/send-message",
		map[string]string{"Authorization": s.token},
		map[string]string{"phone": to, "message": text},
	)
	if err != nil {
		return errors.Wrap(err, "wablas send")
	}

	var resp wablasResponse
	if err := json.Unmarshal(raw, &resp); err != nil || !resp.Status {
		return rejected(status, raw)
	}

	return nil
}
