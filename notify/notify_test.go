package notify

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.AppName != "duckurl" {
		t.Errorf("expected app name duckurl, got %s", config.AppName)
	}
	if config.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", config.Timeout)
	}
}

func TestDuckNotification(t *testing.T) {
	n := DuckNotification("https://random-d.uk/api/42.jpg")
	if n.Title != "New duck" {
		t.Errorf("unexpected title %q", n.Title)
	}
	if n.Message != "https://random-d.uk/api/42.jpg" || n.URL != n.Message {
		t.Errorf("unexpected message %q / url %q", n.Message, n.URL)
	}
}

func TestNew(t *testing.T) {
	notifier := New(DefaultConfig())
	bn, ok := notifier.(*beeepNotifier)
	if !ok {
		t.Fatalf("expected *beeepNotifier, got %T", notifier)
	}
	if bn.notify == nil {
		t.Fatal("expected notify func to be set")
	}
}

func TestBeeepNotifier_Send(t *testing.T) {
	tests := []struct {
		name      string
		sendErr   error
		block     bool
		wantErrIs error
	}{
		{name: "success"},
		{name: "failure", sendErr: errors.New("dbus unavailable"), wantErrIs: ErrNotificationFailed},
		{name: "timeout", block: true, wantErrIs: ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release := make(chan struct{})
			defer close(release)

			var gotTitle, gotMessage string
			n := &beeepNotifier{
				config: Config{AppName: "duckurl", Timeout: 20 * time.Millisecond},
				notify: func(title, message string) error {
					if tt.block {
						<-release
						return nil
					}
					gotTitle, gotMessage = title, message
					return tt.sendErr
				},
			}

			err := n.Send(context.Background(), DuckNotification("https://random-d.uk/api/1.jpg"))
			if tt.wantErrIs == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if gotTitle != "New duck" || gotMessage != "https://random-d.uk/api/1.jpg" {
					t.Errorf("unexpected notification %q / %q", gotTitle, gotMessage)
				}
				return
			}
			if !errors.Is(err, tt.wantErrIs) {
				t.Fatalf("expected %v, got %v", tt.wantErrIs, err)
			}
			if tt.sendErr != nil && !errors.Is(err, tt.sendErr) {
				t.Errorf("expected wrapped cause %v, got %v", tt.sendErr, err)
			}
		})
	}
}

func TestSendWithTimeout_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	release := make(chan struct{})
	defer close(release)

	err := sendWithTimeout(ctx, time.Second, func() error {
		<-release
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
