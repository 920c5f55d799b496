package systembars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/safearea/pkg/graphics"
	"github.com/go-drift/safearea/pkg/platform"
	drifttest "github.com/go-drift/safearea/pkg/testing"
)

func newTestApplicator(theme platform.Theme) (*Applicator, *StyleState, *drifttest.FakeHost) {
	host := drifttest.NewFakeHost(theme)
	state := &StyleState{}
	a := NewApplicator(state, host.Window(), host.Theme())
	a.SetContent(host.Content())
	return a, state, host
}

func TestRepaintUnsetFollowsLightTheme(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeLight)

	a.RepaintAll()

	snap := host.Snapshot()
	assert.True(t, snap.BarBackgrounds)
	assert.False(t, snap.Translucent)
	for _, bar := range []platform.Bar{platform.BarStatus, platform.BarNavigation} {
		assert.True(t, snap.Bar(bar).AppearanceSet, bar.String())
		assert.True(t, snap.Bar(bar).Light, bar.String())
		assert.Equal(t, DefaultPalette.Light, snap.Bar(bar).Color, bar.String())
	}
	assert.Equal(t, DefaultPalette.Light, snap.ContentColor)
	assert.Equal(t, DefaultPalette.Light, snap.DecorColor)
}

func TestExplicitOverrideSurvivesThemeChange(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeLight)

	a.SetStyle("dark", "STATUS_BAR")
	host.SetTheme(platform.ThemeDark)
	a.RepaintAll()

	snap := host.Snapshot()
	assert.False(t, snap.Bar(platform.BarStatus).Light)
	assert.Equal(t, DefaultPalette.Dark, snap.Bar(platform.BarStatus).Color)
	assert.False(t, snap.Bar(platform.BarNavigation).Light)
	assert.Equal(t, DefaultPalette.Dark, snap.Bar(platform.BarNavigation).Color)

	host.SetTheme(platform.ThemeLight)
	a.RepaintAll()

	snap = host.Snapshot()
	assert.False(t, snap.Bar(platform.BarStatus).Light, "explicit dark persists")
	assert.True(t, snap.Bar(platform.BarNavigation).Light, "unset follows theme")
	assert.Equal(t, DefaultPalette.Dark, snap.ContentColor)
}

func TestSetStyleInvalidIsDefaultForBoth(t *testing.T) {
	a, state, host := newTestApplicator(platform.ThemeDark)

	targets := a.SetStyle("bogus", "")

	assert.Equal(t, AllTargets, targets)
	for _, bar := range []platform.Bar{platform.BarStatus, platform.BarNavigation} {
		style, set := state.Requested(bar)
		assert.True(t, set)
		assert.Equal(t, StyleDefault, style)
		assert.False(t, host.Snapshot().Bar(bar).Light)
	}
}

func TestSetStyleLeavesOtherBarUntouched(t *testing.T) {
	a, state, host := newTestApplicator(platform.ThemeLight)
	a.SetStyle("light", "NAVIGATION_BAR")
	before := host.Snapshot().Bar(platform.BarStatus)
	host.ResetCalls()

	a.SetStyle("dark", "NAVIGATION_BAR")

	assert.Equal(t, before, host.Snapshot().Bar(platform.BarStatus))
	_, set := state.Requested(platform.BarStatus)
	assert.False(t, set)
	for _, c := range host.Calls() {
		assert.NotContains(t, c.Args, "status", "unexpected call %s", c)
		assert.NotEqual(t, "Content.SetBackgroundColor", c.Method)
	}
}

func TestStatusBarDrivesBackgroundTogether(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeLight)

	a.SetStyle("dark", "STATUS_BAR")

	snap := host.Snapshot()
	assert.Equal(t, snap.Bar(platform.BarStatus).Color, snap.ContentColor)
	assert.Equal(t, snap.Bar(platform.BarStatus).Color, snap.DecorColor)
	assert.Equal(t, StyleDark, a.ContentStyle())
}

func TestRepaintIdempotent(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeDark)
	a.SetStyle("light", "NAVIGATION_BAR")

	a.RepaintAll()
	first := host.Snapshot()
	a.RepaintAll()

	assert.Equal(t, first, host.Snapshot())
}

func TestRepaintEmptyScope(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeDark)
	a.Repaint(0)
	assert.Empty(t, host.Calls())
}

func TestCustomPalette(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeDark)
	p := Palette{Dark: graphics.MustParseColor("midnightblue"), Light: graphics.MustParseColor("#fafafa")}
	a.SetPalette(p)

	a.RepaintAll()

	assert.Equal(t, p, a.Palette())
	assert.Equal(t, p.Dark, host.Snapshot().ContentColor)
}

func TestHideThenShowStatusOnly(t *testing.T) {
	a, state, host := newTestApplicator(platform.ThemeLight)
	a.SetStyle("dark", "")
	stored := *state

	a.Hide("")
	a.Show("STATUS_BAR")

	snap := host.Snapshot()
	assert.True(t, snap.Bar(platform.BarStatus).Visible)
	assert.False(t, snap.Bar(platform.BarNavigation).Visible)
	require.Equal(t, stored, *state, "visibility must not alter stored styles")
}

func TestShowHideInvalidTargetMeansBoth(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeLight)

	assert.Equal(t, AllTargets, a.Hide("sidebar"))
	snap := host.Snapshot()
	assert.False(t, snap.Bar(platform.BarStatus).Visible)
	assert.False(t, snap.Bar(platform.BarNavigation).Visible)

	assert.Equal(t, AllTargets, a.Show("sidebar"))
	snap = host.Snapshot()
	assert.True(t, snap.Bar(platform.BarStatus).Visible)
	assert.True(t, snap.Bar(platform.BarNavigation).Visible)
}

func TestPaintBackgroundLeavesBarsAlone(t *testing.T) {
	a, state, host := newTestApplicator(platform.ThemeLight)
	state.Set(StyleDark, StatusBar)

	a.PaintBackground()

	snap := host.Snapshot()
	assert.Equal(t, DefaultPalette.Dark, snap.ContentColor)
	assert.Equal(t, DefaultPalette.Dark, snap.DecorColor)
	for _, bar := range []platform.Bar{platform.BarStatus, platform.BarNavigation} {
		assert.False(t, snap.Bar(bar).AppearanceSet, bar.String())
		assert.False(t, snap.Bar(bar).ColorSet, bar.String())
	}
	assert.False(t, snap.BarBackgrounds)
}

func TestSetStyleRepaintsTarget(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeLight)

	targets := a.SetStyle("dark", "NAVIGATION_BAR")

	assert.Equal(t, NavigationBar, targets)
	nav := host.Snapshot().Bar(platform.BarNavigation)
	assert.True(t, nav.AppearanceSet)
	assert.False(t, nav.Light)
	assert.Equal(t, DefaultPalette.Dark, nav.Color)
}
