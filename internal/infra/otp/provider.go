package otp

import (
	"context"
	"log/slog"

	"portal/config"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for OTPRepository, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Clock  service.Clock
}

// NewOTPRepository picks the OTP backend from otp.store.
func NewOTPRepository(params StoreParams) (repository.OTPRepository, error) {
	cfg := params.Config.OTP
	logger := params.Logger

	switch cfg.Store {
	case "", config.OTPStoreMemory:
		logger.Info("Using in-memory OTP store")

		return NewMemoryStore(), nil

	case config.OTPStoreRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("otp.redis.addr is required for redis store")
		}
		logger.Info("Using redis OTP store", slog.String("addr", cfg.Redis.Addr))

		rdb := NewRedisClient(cfg.Redis)
		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(rdb.Ping(ctx).Err(), "ping redis")
			},
			OnStop: func(context.Context) error {
				logger.Info("Closing redis OTP store")

				return rdb.Close()
			},
		})

		return NewRedisStore(rdb, cfg.Redis.Prefix, params.Clock), nil

	default:
		return nil, errors.Errorf("unknown otp store: %s", cfg.Store)
	}
}

// Module provides the OTP store.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewOTPRepository),
)
