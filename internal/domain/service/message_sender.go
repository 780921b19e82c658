package service

import (
	"context"
)

// MessageSender delivers one WhatsApp text through a gateway.
type MessageSender interface {
	// Name identifies the gateway ("fonnte", "wablas", "mpwa").
	Name() string

	// Send delivers text to a canonical number or group id.
	Send(ctx context.Context, to, text string) error
}
