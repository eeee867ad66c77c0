package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	pkgbrowser "github.com/pkg/browser"

	"github.com/jongio/duckurl/urlutil"
)

// DefaultTimeout bounds how long Launch waits for the launcher to return.
const DefaultTimeout = 5 * time.Second

// Opener opens a URL. It is swapped out in tests.
type Opener func(url string) error

var openURL Opener = pkgbrowser.OpenURL

func init() {
	pkgbrowser.Stdout = os.Stderr
	pkgbrowser.Stderr = os.Stderr
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open
	URL string
	// Timeout for the launch (default 5 seconds)
	Timeout time.Duration
}

// Launch opens opts.URL in the default browser and waits for the launcher, ctx cancellation or
// the timeout, whichever comes first.
func Launch(ctx context.Context, opts LaunchOptions) error {
	if err := urlutil.Validate(opts.URL); err != nil {
		return fmt.Errorf("refusing to open %q: %w", opts.URL, err)
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	done := make(chan error, 1)
	open := openURL
	go func() {
		done <- open(opts.URL)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to open browser: %w", ctx.Err())
	}
}

// SetOpener replaces the function used to open URLs and returns a func
// restoring the previous one.
func SetOpener(o Opener) (restore func()) {
	prev := openURL
	openURL = o
	return func() { openURL = prev }
}
