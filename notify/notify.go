// Package notify shows desktop notifications for new ducks.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Notification represents a notification to be displayed.
type Notification struct {
	// Title is the notification title
	Title string

	// Message is the notification body
	Message string

	// URL the notification refers to (optional)
	URL string
}

// Notifier sends notifications to the OS notification system.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}

// Config contains notification system configuration.
type Config struct {
	// AppName is the application name shown in notifications
	AppName string

	// Timeout for notification operations
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "duckurl",
		Timeout: 5 * time.Second,
	}
}

// New creates a notifier backed by beeep.
func New(config Config) Notifier {
	return newBeeepNotifier(config)
}

// Sentinel errors.
var (
	ErrNotificationFailed = errors.New("failed to send notification")
	ErrTimeout            = errors.New("notification timeout")
)

// DuckNotification builds the notification shown for a freshly fetched duck.
func DuckNotification(url string) Notification {
	return Notification{
		Title:   "New duck",
		Message: url,
		URL:     url,
	}
}

// sendWithTimeout runs send and gives up after timeout or when ctx ends.
func sendWithTimeout(ctx context.Context, timeout time.Duration, send func() error) error {
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- send() }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	}
}
