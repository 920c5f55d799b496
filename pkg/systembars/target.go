package systembars

import (
	"strings"

	"github.com/go-drift/safearea/pkg/platform"
)

// Targets is a set of system bars.
type Targets uint8

const (
	StatusBar Targets = 1 << iota
	NavigationBar

	// AllTargets is used whenever no specific bar was named.
	AllTargets = StatusBar | NavigationBar
)

// ParseTarget maps "STATUS_BAR" or "NAVIGATION_BAR" case-insensitively.
// Empty or unrecognized input means both bars.
func ParseTarget(s string) Targets {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STATUS_BAR":
		return StatusBar
	case "NAVIGATION_BAR":
		return NavigationBar
	default:
		return AllTargets
	}
}

// Has reports whether every bar in o is in t.
func (t Targets) Has(o Targets) bool {
	return o != 0 && t&o == o
}

// Bars lists the platform bars in t, status bar first.
func (t Targets) Bars() []platform.Bar {
	bars := make([]platform.Bar, 0, 2)
	if t.Has(StatusBar) {
		bars = append(bars, platform.BarStatus)
	}
	if t.Has(NavigationBar) {
		bars = append(bars, platform.BarNavigation)
	}
	return bars
}

func (t Targets) String() string {
	switch t {
	case StatusBar:
		return "STATUS_BAR"
	case NavigationBar:
		return "NAVIGATION_BAR"
	case AllTargets:
		return "ALL"
	default:
		return "NONE"
	}
}
