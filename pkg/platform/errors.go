// Package platform describes the native host the safe area plugin drives:
// the window and content view capabilities, window insets and the UI-thread
// dispatcher.
package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrClosed is returned when dispatching onto a UI thread that has shut down.
	ErrClosed = errors.New("platform: ui thread closed")

	// ErrNoContentView is returned when the host has no content view to pad.
	ErrNoContentView = errors.New("platform: content view unavailable")
)
