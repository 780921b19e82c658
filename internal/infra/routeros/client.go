// Package routeros talks to MikroTik routers over the RouterOS API.
package routeros

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"portal/config"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"github.com/go-routeros/routeros/v3"
	"go.uber.org/fx"
)

// ErrNotConfigured is returned when router.host is empty.
var ErrNotConfigured = errors.New("router not configured")

type client struct {
	address  string
	username string
	password string
	timeout  time.Duration
	logger   *slog.Logger
}

// ClientParams holds dependencies for RouterClient, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRouterClient returns a client that opens a fresh API session for every call.
func NewRouterClient(params ClientParams) service.RouterClient {
	cfg := params.Config.Router

	return &client{
		address:  net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		username: cfg.Username,
		password: cfg.Password,
		timeout:  cfg.Timeout,
		logger:   params.Logger,
	}
}

func (c *client) Write(ctx context.Context, path string, params []string) ([]map[string]string, error) {
	if host, _, _ := net.SplitHostPort(c.address); host == "" {
		return nil, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	conn, err := routeros.DialTimeout(c.address, c.username, c.password, c.timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "dial router %s", c.address)
	}
	defer conn.Close()

	sentence := append([]string{path}, params...)

	c.logger.Debug("[RouterOS] Running command", slog.String("path", path))

	reply, err := conn.RunArgs(sentence)
	if err != nil {
		return nil, errors.Wrapf(err, "run %s", path)
	}

	rows := make([]map[string]string, 0, len(reply.Re))
	for _, re := range reply.Re {
		rows = append(rows, re.Map)
	}

	return rows, nil
}

// Module provides the RouterOS client.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRouterClient),
)
