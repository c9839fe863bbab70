package sender

import (
	"context"
	"time"
)

// SendResult reports a delivered message.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers outbound email. Delivery is fire-and-forget from the
// caller's point of view; failures are logged, never surfaced to requests.
type Sender interface {
	SendEmail(ctx context.Context, to, subject, body string) (SendResult, error)
}
