package systembars

import (
	"github.com/rs/zerolog"

	"github.com/go-drift/safearea/pkg/graphics"
	"github.com/go-drift/safearea/pkg/platform"
)

// Palette holds the two theme colors. Bars, the window decoration and the
// content view are all painted from it so padded areas match the bars.
type Palette struct {
	Dark  graphics.Color
	Light graphics.Color
}

// DefaultPalette is the palette used unless configured otherwise.
var DefaultPalette = Palette{
	Dark:  graphics.Color(0xFF212B35),
	Light: graphics.ColorWhite,
}

// For returns the color for a resolved style.
func (p Palette) For(style Style) graphics.Color {
	if style == StyleDark {
		return p.Dark
	}
	return p.Light
}

// Applicator paints the resolved per-bar styles onto a window.
type Applicator struct {
	state   *StyleState
	window  platform.Window
	theme   platform.ThemeSource
	content platform.ContentView
	palette Palette
	log     zerolog.Logger
}

// NewApplicator creates an applicator over state. The content view is
// optional and can be supplied later with SetContent.
func NewApplicator(state *StyleState, window platform.Window, theme platform.ThemeSource) *Applicator {
	return &Applicator{
		state:   state,
		window:  window,
		theme:   theme,
		palette: DefaultPalette,
		log:     zerolog.Nop(),
	}
}

// SetContent sets the view whose background follows the status bar.
func (a *Applicator) SetContent(view platform.ContentView) {
	a.content = view
}

// SetPalette replaces the theme colors used by later repaints.
func (a *Applicator) SetPalette(p Palette) {
	a.palette = p
}

// SetLogger sets the logger for paint events.
func (a *Applicator) SetLogger(l zerolog.Logger) {
	a.log = l
}

// Palette returns the theme colors in use.
func (a *Applicator) Palette() Palette {
	return a.palette
}

// SetStyle stores the parsed style for the parsed target and repaints the
// bars it touched. It returns those bars.
func (a *Applicator) SetStyle(style, target string) Targets {
	s, t := ParseStyle(style), ParseTarget(target)
	a.state.Set(s, t)
	a.Repaint(t)
	return t
}

// Repaint paints every bar in scope from its effective style. The status
// bar also drives the window decoration and content backgrounds. Bars
// outside scope are not touched.
func (a *Applicator) Repaint(scope Targets) {
	bars := scope.Bars()
	if len(bars) == 0 {
		return
	}
	theme := a.theme.Current()

	a.window.EnableBarBackgrounds()
	for _, bar := range bars {
		style := a.state.Effective(bar, theme)
		color := a.palette.For(style)

		a.window.SetAppearance(bar, style == StyleLight)
		a.window.SetBarColor(bar, color)
		if bar == platform.BarStatus {
			a.paintBackground(color)
		}
		a.log.Debug().
			Stringer("bar", bar).
			Stringer("style", style).
			Stringer("theme", theme).
			Msg("painted system bar")
	}
}

// PaintBackground paints the window decoration and content backgrounds
// from the status bar's effective style without touching either bar.
func (a *Applicator) PaintBackground() {
	a.paintBackground(a.palette.For(a.ContentStyle()))
}

func (a *Applicator) paintBackground(color graphics.Color) {
	a.window.SetBackgroundColor(color)
	if a.content != nil {
		a.content.SetBackgroundColor(color)
	}
}

// RepaintAll repaints both bars.
func (a *Applicator) RepaintAll() {
	a.Repaint(AllTargets)
}

// ContentStyle is the status bar's effective style, which the content
// background follows.
func (a *Applicator) ContentStyle() Style {
	return a.state.Effective(platform.BarStatus, a.theme.Current())
}

// Show makes the parsed target bars visible. Stored styles are unchanged.
func (a *Applicator) Show(target string) Targets {
	t := ParseTarget(target)
	for _, bar := range t.Bars() {
		a.window.ShowBar(bar)
	}
	return t
}

// Hide hides the parsed target bars. Stored styles are unchanged.
func (a *Applicator) Hide(target string) Targets {
	t := ParseTarget(target)
	for _, bar := range t.Bars() {
		a.window.HideBar(bar)
	}
	return t
}
