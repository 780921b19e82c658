package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// TroubleReportResult tells which legs of a trouble report were delivered.
type TroubleReportResult struct {
	AdminSent bool
	GroupSent bool
}

// NotificationUsecase sends outbound WhatsApp messages through the active gateway.
type NotificationUsecase interface {
	// Send delivers text as is.
	Send(ctx context.Context, to, text string) error

	// Notify delivers body framed by the branded header and footer.
	Notify(ctx context.Context, to, title, body string) error

	// ReportTrouble forwards a customer complaint to the admin and the group.
	ReportTrouble(ctx context.Context, report entity.TroubleReport) (TroubleReportResult, error)

	// TestGateway sends a test message to the admin number.
	TestGateway(ctx context.Context) error

	// TestGroup sends a test message to the configured group.
	TestGroup(ctx context.Context) error
}
