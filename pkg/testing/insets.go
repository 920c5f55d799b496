package testing

import "github.com/go-drift/safearea/pkg/platform"

// InsetsSpec describes a WindowInsets by the groups tests usually care about.
type InsetsSpec struct {
	SystemBars    platform.EdgeInsets
	DisplayCutout platform.EdgeInsets
	IME           platform.EdgeInsets
	Gestures      platform.EdgeInsets
}

// Insets builds a WindowInsets from spec. SystemBars is split so the top
// edge lands on the status bar and the rest on the navigation bar.
func Insets(spec InsetsSpec) platform.WindowInsets {
	sb := spec.SystemBars
	return platform.NewWindowInsetsBuilder(platform.WindowInsets{}).
		SetInsets(platform.StatusBars, platform.EdgeInsets{Top: sb.Top}).
		SetInsets(platform.NavigationBars, platform.EdgeInsets{Bottom: sb.Bottom, Left: sb.Left, Right: sb.Right}).
		SetInsets(platform.DisplayCutout, spec.DisplayCutout).
		SetInsets(platform.IME, spec.IME).
		SetInsets(platform.SystemGestures, spec.Gestures).
		Build()
}
