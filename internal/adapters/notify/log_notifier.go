package notify

import (
	"context"
	"log"
	"sync"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

var _ domain.Notifier = (*LogNotifier)(nil)

// maxSent bounds the history kept by a LogNotifier.
const maxSent = 100

// LogNotifier writes notifications to the service log. It is the channel used
// when nothing external is configured.
type LogNotifier struct {
	permissionGate

	mu   sync.Mutex
	sent []domain.Notification
}

func NewLogNotifier(initial domain.Permission) *LogNotifier {
	return &LogNotifier{permissionGate: newPermissionGate(initial)}
}

func (n *LogNotifier) Supported() bool { return true }

func (n *LogNotifier) RequestPermission(ctx context.Context) (domain.Permission, error) {
	return n.request(), nil
}

func (n *LogNotifier) Send(ctx context.Context, msg domain.Notification) error {
	n.mu.Lock()
	n.sent = append(n.sent, msg)
	if len(n.sent) > maxSent {
		n.sent = append(n.sent[:0], n.sent[len(n.sent)-maxSent:]...)
	}
	n.mu.Unlock()

	log.Printf("[NOTIFY] %s: %s (tag=%s)", msg.Title, msg.Body, msg.Tag)
	return nil
}

// Sent returns the most recent notifications, oldest first.
func (n *LogNotifier) Sent() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]domain.Notification, len(n.sent))
	copy(out, n.sent)
	return out
}
