// Package browser opens duck image URLs in the user's default web browser.
//
// Launching is delegated to github.com/pkg/browser (cmd /c start, open or
// xdg-open depending on the platform). Only http:// and https:// URLs are
// passed on, so file:// or javascript: values that slipped into an API
// response never reach a shell command.
//
// Output from the launcher process is sent to stderr; stdout is reserved for
// the printed URL.
//
// Example:
//
//	if err := browser.Launch(ctx, browser.LaunchOptions{URL: u.String()}); err != nil {
//		logutil.Logger().Warn("could not open browser", "error", err)
//	}
package browser
