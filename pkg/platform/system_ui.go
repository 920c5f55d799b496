package platform

import (
	"strings"

	"github.com/go-drift/safearea/pkg/graphics"
)

// Bar identifies one system bar.
type Bar int

const (
	BarStatus Bar = iota
	BarNavigation
)

func (b Bar) String() string {
	if b == BarNavigation {
		return "navigation"
	}
	return "status"
}

// Theme is the device-wide light or dark setting.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme maps "light" or "dark" to a Theme.
func ParseTheme(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	}
	return ThemeLight, false
}

//go:generate mockgen -source=system_ui.go -destination=mocks/mock_system_ui.go -package=mocks

// Window is the slice of the native window needed to style system bars.
// Implementations are only called on the UI thread.
type Window interface {
	// EnableBarBackgrounds lets the app paint system bar backgrounds and
	// clears legacy status bar translucency.
	EnableBarBackgrounds()

	// SetAppearance selects dark foreground content (light appearance) or
	// light foreground content for the bar.
	SetAppearance(bar Bar, light bool)

	// SetBarColor paints the bar background.
	SetBarColor(bar Bar, color graphics.Color)

	// SetBackgroundColor paints the root decoration behind everything.
	SetBackgroundColor(color graphics.Color)

	// ShowBar and HideBar go through the inset visibility controller.
	ShowBar(bar Bar)
	HideBar(bar Bar)
}

// InsetsListener receives window insets and returns what is left for
// listeners further down the view hierarchy.
type InsetsListener func(insets WindowInsets) WindowInsets

// ContentView is the view that hosts the app content.
type ContentView interface {
	SetBackgroundColor(color graphics.Color)
	SetPadding(padding EdgeInsets)

	// SetInsetsListener replaces the view's inset listener. Nil clears it.
	SetInsetsListener(listener InsetsListener)
}

// ThemeSource reports the device theme and its changes.
type ThemeSource interface {
	Current() Theme

	// ObserveThemeChange registers fn for theme changes and returns a
	// function that removes it.
	ObserveThemeChange(fn func(Theme)) (cancel func())
}

// Host bundles the native capabilities a plugin instance works against.
type Host interface {
	Window() Window
	Content() ContentView
	Theme() ThemeSource
}
