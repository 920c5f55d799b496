package systembars

import (
	"strings"

	"github.com/go-drift/safearea/pkg/platform"
)

// Style is the appearance requested for a system bar.
type Style int

const (
	// StyleDefault follows the device theme at paint time.
	StyleDefault Style = iota
	StyleDark
	StyleLight
)

func (s Style) String() string {
	switch s {
	case StyleDark:
		return "DARK"
	case StyleLight:
		return "LIGHT"
	default:
		return "DEFAULT"
	}
}

// ParseStyle maps "DARK", "LIGHT" or "DEFAULT" case-insensitively.
// Anything else is StyleDefault.
func ParseStyle(s string) Style {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DARK":
		return StyleDark
	case "LIGHT":
		return StyleLight
	default:
		return StyleDefault
	}
}

// StyleForTheme is the style implied by a device theme.
func StyleForTheme(theme platform.Theme) Style {
	if theme == platform.ThemeDark {
		return StyleDark
	}
	return StyleLight
}

// Resolve returns the style to paint. An unset request or StyleDefault
// follows theme; anything else is returned as is. The result is never
// StyleDefault.
func Resolve(requested Style, set bool, theme platform.Theme) Style {
	if !set || requested == StyleDefault {
		return StyleForTheme(theme)
	}
	return requested
}
