package notify

import (
	"context"

	"github.com/gen2brain/beeep"
)

// beeepNotifier implements Notifier using the cross-platform beeep library.
type beeepNotifier struct {
	config Config
	notify func(title, message string) error
}

func newBeeepNotifier(config Config) *beeepNotifier {
	return &beeepNotifier{
		config: config,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Send sends a notification using beeep.
func (n *beeepNotifier) Send(ctx context.Context, notification Notification) error {
	return sendWithTimeout(ctx, n.config.Timeout, func() error {
		return n.notify(notification.Title, notification.Message)
	})
}
