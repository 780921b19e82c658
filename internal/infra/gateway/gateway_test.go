package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/config"
	"portal/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func captureServer(t *testing.T, status int, reply string, captured *map[string]any, header *http.Header) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if header != nil {
			*header = r.Header.Clone()
		}
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestFonnteSender_Send(t *testing.T) {
	var body map[string]any
	var header http.Header
	srv := captureServer(t, http.StatusOK, `{"status":true}`, &body, &header)

	sender := NewFonnteSender(config.GatewayConfig{Token: "tok", ServerURL: srv.URL}, srv.Client())

	require.NoError(t, sender.Send(t.Context(), "6281234567890", "halo"))
	assert.Equal(t, "tok", header.Get("Authorization"))
	assert.Equal(t, map[string]any{"target": "6281234567890", "message": "halo"}, body)
}

func TestFonnteSender_Errors(t *testing.T) {
	srv := captureServer(t, http.StatusUnauthorized, `{"reason":"invalid token"}`, nil, nil)

	err := NewFonnteSender(config.GatewayConfig{Token: "tok", ServerURL: srv.URL}, srv.Client()).
		Send(t.Context(), "628", "x")
	assert.ErrorIs(t, err, ErrRejected)

	err = NewFonnteSender(config.GatewayConfig{}, nil).Send(t.Context(), "628", "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestWablasSender_Send(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantErr bool
	}{
		{name: "status true", reply: `{"status":true,"message":"ok"}`},
		{name: "status false", reply: `{"status":false}`, wantErr: true},
		{name: "not json", reply: `oops`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/send-message", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				_, _ = w.Write([]byte(tt.reply))
			}))
			defer srv.Close()

			sender := NewWablasSender(config.GatewayConfig{Token: "tok", ServerURL: srv.URL + "/"}, srv.Client())
			err := sender.Send(t.Context(), "6281234567890", "halo")

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRejected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "6281234567890", body["phone"])
		})
	}
}

func TestMPWASender_Send(t *testing.T) {
	var body map[string]any
	srv := captureServer(t, http.StatusOK, `{"status":"success"}`, &body, nil)

	sender := NewMPWASender(config.GatewayConfig{Token: "key", ServerURL: srv.URL}, "NetKita", srv.Client())

	require.NoError(t, sender.Send(t.Context(), "081234567890", "halo"))
	assert.Equal(t, map[string]any{
		"api_key": "key",
		"sender":  "default",
		"number":  "6281234567890",
		"message": "halo",
		"footer":  "NetKita",
	}, body)
}

func TestMPWASender_GroupTargetUnchanged(t *testing.T) {
	var body map[string]any
	srv := captureServer(t, http.StatusOK, `{"success":true}`, &body, nil)

	sender := NewMPWASender(config.GatewayConfig{Token: "key", Sender: "628111", Footer: "f", ServerURL: srv.URL}, "", srv.Client())

	require.NoError(t, sender.Send(t.Context(), "120363025@g.us", "halo"))
	assert.Equal(t, "120363025@g.us", body["number"])
	assert.Equal(t, "628111", body["sender"])
}

func TestMPWAAccepted(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: `{"status":true}`, want: true},
		{raw: `{"status":"true"}`, want: true},
		{raw: `{"status":"success"}`, want: true},
		{raw: `{"success":true}`, want: true},
		{raw: `{"status":false,"msg":"failed"}`, want: false},
		{raw: `{"status":"error"}`, want: false},
		{raw: `Pesan berhasil dikirim`, want: true},
		{raw: `<html>Success</html>`, want: true},
		{raw: `Bad Gateway`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, mpwaAccepted([]byte(tt.raw)))
		})
	}
}

func TestNewMessageSender(t *testing.T) {
	cfg := &config.Config{}

	sender, err := NewMessageSender(SenderParams{Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)
	assert.Equal(t, "none", sender.Name())
	assert.True(t, errors.Is(sender.Send(t.Context(), "628", "x"), ErrNotConfigured))

	cfg.WhatsApp.Active = "MPWA"
	sender, err = NewMessageSender(SenderParams{Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)
	assert.Equal(t, config.GatewayMPWA, sender.Name())

	cfg.WhatsApp.Active = "telegram"
	_, err = NewMessageSender(SenderParams{Config: cfg, Logger: discardLogger()})
	assert.Error(t, err)
}
