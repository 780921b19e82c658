package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"portal/config"
	"portal/internal/delivery"
	"portal/internal/delivery/http"
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/router/handler"
	"portal/internal/domain/message"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/infra/auth"
	"portal/internal/infra/gateway"
	"portal/internal/infra/genieacs"
	logs "portal/internal/infra/log"
	"portal/internal/infra/otp"
	"portal/internal/infra/qrcode"
	"portal/internal/infra/routeros"
	"portal/internal/usecase"
	"portal/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		service.NewSystemClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		genieacs.Module,
		otp.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		gateway.Module,
		routeros.Module,
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			newFormatter,
			newLoopFilter,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newFormatter(cfg *config.Config, clock service.Clock) *message.Formatter {
	return message.NewFormatter(message.Branding{
		ISPName:        cfg.Branding.ISPName,
		SupportContact: cfg.Branding.SupportContact,
	}, clock)
}

func newLoopFilter(cfg *config.Config) *message.LoopFilter {
	return message.NewLoopFilter(cfg.Branding.ISPName, cfg.Webhook.Signatures...)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDirectoryService,
			newDeviceService,
			newNotificationService,
			impl.NewRouterService,
			impl.NewSessionService,
			newBotService,
		),
	)
}

func newDirectoryService(repo repository.DeviceRepository, cfg *config.Config, logger *slog.Logger) usecase.DirectoryUsecase {
	return impl.NewDirectoryService(repo, cfg.WhatsApp.AdminNumber, logger)
}

func newDeviceService(
	repo repository.DeviceRepository,
	qr service.QRCodeService,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return impl.NewDeviceService(repo, qr, clock, cfg.Refresh.Concurrency, logger)
}

func newNotificationService(
	sender service.MessageSender,
	formatter *message.Formatter,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return impl.NewNotificationService(sender, formatter, cfg.WhatsApp.AdminNumber, cfg.WhatsApp.GroupID, clock, logger)
}

type botParams struct {
	fx.In

	Directory  usecase.DirectoryUsecase
	Devices    usecase.DeviceUsecase
	Router     usecase.RouterUsecase
	Notifier   usecase.NotificationUsecase
	Formatter  *message.Formatter
	LoopFilter *message.LoopFilter
	Clock      service.Clock
	Config     *config.Config
	Logger     *slog.Logger
}

func newBotService(p botParams) usecase.BotUsecase {
	senders := make(map[string]string)
	for _, name := range []string{config.GatewayFonnte, config.GatewayWablas, config.GatewayMPWA} {
		if gw, ok := p.Config.WhatsApp.Gateway(name); ok && strings.TrimSpace(gw.Sender) != "" {
			senders[name] = gw.Sender
		}
	}

	return impl.NewBotService(impl.BotParams{
		Directory:  p.Directory,
		Devices:    p.Devices,
		Router:     p.Router,
		Notifier:   p.Notifier,
		Formatter:  p.Formatter,
		LoopFilter: p.LoopFilter,
		BotSenders: senders,
		Clock:      p.Clock,
		Logger:     p.Logger,
	})
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewPortalHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
