package systembars

import "github.com/go-drift/safearea/pkg/platform"

// StyleState is the style the application requested per bar. The zero
// value has nothing requested, which leaves the host's own behavior alone.
type StyleState struct {
	status     Style
	statusSet  bool
	navigation Style
	navSet     bool
}

// Set stores style for every bar in targets. Bars outside targets keep
// their previous request.
func (s *StyleState) Set(style Style, targets Targets) {
	if targets.Has(StatusBar) {
		s.status, s.statusSet = style, true
	}
	if targets.Has(NavigationBar) {
		s.navigation, s.navSet = style, true
	}
}

// Requested returns the stored request for bar and whether one was made.
func (s *StyleState) Requested(bar platform.Bar) (Style, bool) {
	if bar == platform.BarNavigation {
		return s.navigation, s.navSet
	}
	return s.status, s.statusSet
}

// Effective resolves bar's request against the device theme.
func (s *StyleState) Effective(bar platform.Bar, theme platform.Theme) Style {
	style, set := s.Requested(bar)
	return Resolve(style, set, theme)
}

// Configured returns the bars with a stored request.
func (s *StyleState) Configured() Targets {
	var t Targets
	if s.statusSet {
		t |= StatusBar
	}
	if s.navSet {
		t |= NavigationBar
	}
	return t
}
