package systembars

import (
	"github.com/rs/zerolog"

	"github.com/go-drift/safearea/pkg/platform"
)

// consumedInsets are the inset types absorbed by content padding.
const consumedInsets = platform.SystemBars | platform.DisplayCutout

// InsetCoordinator is the content view's inset listener. It pads the view
// for the status bar and cutout and leaves bottom insets, and every other
// inset type, to listeners further down.
type InsetCoordinator struct {
	applicator *Applicator
	content    platform.ContentView
	attached   bool
	padding    platform.EdgeInsets
	log        zerolog.Logger
}

// NewInsetCoordinator creates a coordinator for content.
func NewInsetCoordinator(a *Applicator, content platform.ContentView) *InsetCoordinator {
	return &InsetCoordinator{
		applicator: a,
		content:    content,
		log:        zerolog.Nop(),
	}
}

// SetLogger sets the logger for inset events.
func (c *InsetCoordinator) SetLogger(l zerolog.Logger) {
	c.log = l
}

// Attach installs the coordinator as the content view's inset listener.
// Calling it again while attached does nothing.
func (c *InsetCoordinator) Attach() {
	if c.attached {
		return
	}
	c.content.SetInsetsListener(c.OnInsetsChanged)
	c.attached = true
}

// Detach clears the content view's inset listener if this coordinator set it.
func (c *InsetCoordinator) Detach() {
	if !c.attached {
		return
	}
	c.content.SetInsetsListener(nil)
	c.attached = false
}

// Attached reports whether the listener is installed.
func (c *InsetCoordinator) Attached() bool {
	return c.attached
}

// Padding returns the padding applied by the last inset delivery.
func (c *InsetCoordinator) Padding() platform.EdgeInsets {
	return c.padding
}

// OnInsetsChanged repaints for the current style, pads the top of the
// content view by the system bar and cutout inset, and returns in with
// those types consumed.
func (c *InsetCoordinator) OnInsetsChanged(in platform.WindowInsets) platform.WindowInsets {
	bars := in.Insets(consumedInsets)

	// Repaint before padding so the newly exposed area is never drawn with
	// a stale background.
	c.applicator.RepaintAll()

	c.padding = platform.EdgeInsets{Top: bars.Top}
	c.content.SetPadding(c.padding)

	c.log.Debug().
		Float64("top", bars.Top).
		Float64("ime_bottom", in.Insets(platform.IME).Bottom).
		Msg("applied window insets")

	return platform.NewWindowInsetsBuilder(in).
		SetInsets(consumedInsets, platform.EdgeInsets{}).
		Build()
}
