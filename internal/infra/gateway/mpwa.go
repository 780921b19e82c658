package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"portal/config"
	"portal/internal/domain/phone"
	"portal/internal/domain/service"
	"portal/internal/errors"
)

const defaultMPWASender = "default"

type mpwaSender struct {
	endpoint string
	token    string
	sender   string
	footer   string
	client   *http.Client
}

type mpwaRequest struct {
	APIKey  string `json:"api_key"`
	Sender  string `json:"sender"`
	Number  string `json:"number"`
	Message string `json:"message"`
	Footer  string `json:"footer"`
}

// NewMPWASender delivers through an MPWA server. footer falls back to the
// brand name when the gateway block leaves it empty.
func NewMPWASender(cfg config.GatewayConfig, brand string, client *http.Client) service.MessageSender {
	sender := cfg.Sender
	if sender == "" {
		sender = defaultMPWASender
	}
	footer := cfg.Footer
	if footer == "" {
		footer = brand
	}

	return &mpwaSender{
		endpoint: cfg.ServerURL,
		token:    cfg.Token,
		sender:   sender,
		footer:   footer,
		client:   httpClientOrDefault(client),
	}
}

func (s *mpwaSender) Name() string { return config.GatewayMPWA }

func (s *mpwaSender) Send(ctx context.Context, to, text string) error {
	if s.token == "" {
		return errors.Wrap(ErrNotConfigured, "mpwa token is empty")
	}

	target := phone.Normalize(to)
	if target == "" {
		return errors.Errorf("mpwa: invalid target %q", to)
	}

	status, raw, err := postJSON(ctx, s.client, s.endpoint, nil, mpwaRequest{
		APIKey:  s.token,
		Sender:  s.sender,
		Number:  target,
		Message: text,
		Footer:  s.footer,
	})
	if err != nil {
		return errors.Wrap(err, "mpwa send")
	}
	if !mpwaAccepted(raw) {
		return rejected(status, raw)
	}

	return nil
}

// mpwaAccepted understands the several answer shapes MPWA servers produce.
func mpwaAccepted(raw []byte) bool {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		lower := strings.ToLower(string(raw))

		return strings.Contains(lower, "success") || strings.Contains(lower, "berhasil")
	}

	switch v := body["status"].(type) {
	case bool:
		if v {
			return true
		}
	case string:
		if v == "true" || v == "success" {
			return true
		}
	}

	ok, _ := body["success"].(bool)

	return ok
}
