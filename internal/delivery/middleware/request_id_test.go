package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "portal/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent"},
		{name: "caller id kept", incoming: "gw-42.abc", keep: true},
		{name: "newline rejected", incoming: "abc\nforged=1"},
		{name: "too long rejected", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/webhook/fonnte", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestID(c)
				deliverycontext.EnrichLogger(c, slog.String("gateway", "fonnte"))
				deliverycontext.GetLogger(c.Request().Context()).Info("handled")
				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, seen, got)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
				assert.Len(t, got, 36)
			}
			assert.Contains(t, buf.String(), `"request_id":"`+got+`"`)
			assert.Contains(t, buf.String(), `"gateway":"fonnte"`)
		})
	}
}

func TestEnrichLogger_NoRequestLogger(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	deliverycontext.EnrichLogger(c, slog.String("subject", "081234567890"))

	assert.Nil(t, deliverycontext.GetLogger(c.Request().Context()))
}
