package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// BotUsecase answers inbound chat messages.
type BotUsecase interface {
	// HandleMessage returns the reply to send back, or false when the
	// message must be ignored.
	HandleMessage(ctx context.Context, msg entity.InboundMessage) (string, bool)
}
