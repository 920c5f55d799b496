package safearea

import (
	"context"

	"github.com/go-drift/safearea/pkg/platform"
	"github.com/go-drift/safearea/pkg/systembars"
)

// BarState describes one bar as the plugin sees it.
type BarState struct {
	Requested systembars.Style
	Set       bool
	Effective systembars.Style
}

// State is a point-in-time view of the plugin, read on the UI thread.
type State struct {
	Theme            platform.Theme
	StatusBar        BarState
	NavigationBar    BarState
	Padding          platform.EdgeInsets
	InsetsAttached   bool
	ViewportFitCover bool
}

// State reads the current plugin state.
func (p *Plugin) State(ctx context.Context) (State, error) {
	var s State
	err := p.dispatchSync(ctx, "safearea.State", "", func() {
		theme := p.host.Theme().Current()
		s.Theme = theme
		s.StatusBar = p.barState(platform.BarStatus, theme)
		s.NavigationBar = p.barState(platform.BarNavigation, theme)
		if p.insets != nil {
			s.Padding = p.insets.Padding()
			s.InsetsAttached = p.insets.Attached()
		}
	})
	if err != nil {
		return State{}, err
	}
	s.ViewportFitCover = p.ViewportFitCover()
	return s, nil
}

func (p *Plugin) barState(bar platform.Bar, theme platform.Theme) BarState {
	style, set := p.state.Requested(bar)
	return BarState{
		Requested: style,
		Set:       set,
		Effective: p.state.Effective(bar, theme),
	}
}

