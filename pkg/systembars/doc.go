// Package systembars decides how the status bar and navigation bar are
// painted and how window insets pad the content view.
//
// A [StyleState] holds the style the application asked for per bar. The
// [Applicator] resolves it against the live device theme and paints the
// window; the [InsetCoordinator] repaints on every inset delivery, pads the
// content view for the status bar and hands the remaining insets (notably
// the IME) to whoever listens below it.
//
// Nothing in this package is safe for concurrent use. Callers confine it to
// the UI thread.
package systembars
