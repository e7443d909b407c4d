package notify

import (
	"context"

	"github.com/islamku/muadzin/internal/model"
)

// Notifier is the registration side of the notification delivery subsystem.
// CancelAll drops every reminder previously registered by this service;
// Register enqueues one reminder to fire after its delay. Registration is
// full-replace: a scheduling pass always cancels before it registers.
type Notifier interface {
	CancelAll(ctx context.Context) error
	Register(ctx context.Context, n model.ScheduledNotification) error
}
