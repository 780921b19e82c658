package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/message"
	"portal/internal/domain/phone"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"
)

type notificationService struct {
	sender      service.MessageSender
	formatter   *message.Formatter
	adminNumber string
	groupID     string
	clock       service.Clock
	logger      *slog.Logger
}

// NewNotificationService creates the outbound messaging service.
func NewNotificationService(
	sender service.MessageSender,
	formatter *message.Formatter,
	adminNumber string,
	groupID string,
	clock service.Clock,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		sender:      sender,
		formatter:   formatter,
		adminNumber: strings.TrimSpace(adminNumber),
		groupID:     strings.TrimSpace(groupID),
		clock:       clock,
		logger:      logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send normalizes personal numbers; group ids go out untouched.
func (srv *notificationService) Send(ctx context.Context, to, text string) error {
	target := phone.Normalize(to)
	if target == "" {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "invalid recipient %q", to)
	}

	if err := srv.sender.Send(ctx, target, text); err != nil {
		srv.log(ctx).Warn("Message delivery failed", slog.String("gateway", srv.sender.Name()), slog.String("to", target), slog.Any("error", err))
		return errors.Wrap(err, "send message")
	}

	return nil
}

func (srv *notificationService) Notify(ctx context.Context, to, title, body string) error {
	return srv.Send(ctx, to, srv.formatter.Format(title, body))
}

// ReportTrouble requires the admin leg; the group leg is attempted when a
// group is configured and its failure is reported separately.
func (srv *notificationService) ReportTrouble(ctx context.Context, report entity.TroubleReport) (usecase.TroubleReportResult, error) {
	var result usecase.TroubleReportResult
	if srv.adminNumber == "" {
		return result, domainerrors.ErrAdminNotConfigured
	}

	if report.ReportedAt.IsZero() {
		report.ReportedAt = srv.clock()
	}
	text := message.TroubleReportText(report)

	if err := srv.Send(ctx, srv.adminNumber, text); err != nil {
		return result, errors.Wrap(err, "report to admin")
	}
	result.AdminSent = true

	if srv.groupID == "" {
		return result, nil
	}
	if err := srv.Send(ctx, srv.groupID, text); err != nil {
		return result, errors.Wrap(err, "report to group")
	}
	result.GroupSent = true

	srv.log(ctx).Info("Trouble report delivered", slog.String("customer", report.CustomerNumber))

	return result, nil
}

func (srv *notificationService) TestGateway(ctx context.Context) error {
	if srv.adminNumber == "" {
		return domainerrors.ErrAdminNotConfigured
	}

	return srv.Send(ctx, srv.adminNumber, message.GatewayTestText(srv.formatter.Branding().ISPName))
}

func (srv *notificationService) TestGroup(ctx context.Context) error {
	if srv.groupID == "" {
		return domainerrors.ErrGroupNotConfigured
	}

	return srv.Send(ctx, srv.groupID, message.GroupTestText(srv.formatter.Branding().ISPName))
}
