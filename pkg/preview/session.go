// Package preview drives a safe area plugin against an in-memory phone and
// renders it in the terminal.
package preview

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-drift/safearea/pkg/config"
	"github.com/go-drift/safearea/pkg/platform"
	"github.com/go-drift/safearea/pkg/safearea"
	"github.com/go-drift/safearea/pkg/systembars"
	drifttest "github.com/go-drift/safearea/pkg/testing"
)

// Preset is a named set of window insets the simulated device can report.
type Preset struct {
	Name   string
	Insets platform.WindowInsets
}

// Presets are cycled in order by the preview.
var Presets = []Preset{
	{Name: "phone", Insets: drifttest.Insets(drifttest.InsetsSpec{
		SystemBars: platform.EdgeInsetsLTRB(0, 24, 0, 48),
	})},
	{Name: "keyboard", Insets: drifttest.Insets(drifttest.InsetsSpec{
		SystemBars: platform.EdgeInsetsLTRB(0, 24, 0, 48),
		IME:        platform.EdgeInsetsLTRB(0, 0, 0, 300),
	})},
	{Name: "cutout", Insets: drifttest.Insets(drifttest.InsetsSpec{
		SystemBars:    platform.EdgeInsetsLTRB(0, 24, 0, 48),
		DisplayCutout: platform.EdgeInsetsLTRB(0, 40, 0, 0),
	})},
	{Name: "gesture nav", Insets: drifttest.Insets(drifttest.InsetsSpec{
		SystemBars: platform.EdgeInsetsLTRB(0, 24, 0, 16),
		Gestures:   platform.EdgeInsetsLTRB(24, 0, 24, 16),
	})},
	{Name: "fullscreen"},
}

// PresetByName finds a preset, ignoring case.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Preset{}, false
}

var targetCycle = []systembars.Targets{
	systembars.AllTargets,
	systembars.StatusBar,
	systembars.NavigationBar,
}

// ManualViewport is a viewport-fit detector whose signal is set by hand.
type ManualViewport struct {
	mu sync.Mutex
	fn func(bool)
}

// Attach implements safearea.ViewportFitDetector.
func (v *ManualViewport) Attach(fn func(cover bool)) func() {
	v.mu.Lock()
	v.fn = fn
	v.mu.Unlock()
	return func() {
		v.mu.Lock()
		v.fn = nil
		v.mu.Unlock()
	}
}

// Report forwards cover to the attached plugin, if any.
func (v *ManualViewport) Report(cover bool) {
	v.mu.Lock()
	fn := v.fn
	v.mu.Unlock()
	if fn != nil {
		fn(cover)
	}
}

// Session owns one simulated device and the plugin running on it.
// Its methods may be called from any goroutine except the UI thread.
type Session struct {
	host     *drifttest.FakeHost
	ui       platform.Dispatcher
	log      zerolog.Logger
	viewport *ManualViewport

	mu       sync.Mutex
	plugin   *safearea.Plugin
	cfg      config.Config
	preset   int
	target   int
	returned platform.WindowInsets
}

// NewSession creates a device in theme whose UI thread is ui.
func NewSession(ui platform.Dispatcher, theme platform.Theme, log zerolog.Logger) *Session {
	return &Session{
		host:     drifttest.NewFakeHost(theme),
		ui:       ui,
		log:      log,
		viewport: &ManualViewport{},
		cfg:      config.Default(),
	}
}

// Host returns the simulated device.
func (s *Session) Host() *drifttest.FakeHost { return s.host }

// Viewport returns the viewport-fit detector handed to the plugin.
func (s *Session) Viewport() *ManualViewport { return s.viewport }

// Load replaces the running plugin with one built from cfg, starts it and
// replays the current inset preset.
func (s *Session) Load(ctx context.Context, cfg config.Config) error {
	s.mu.Lock()
	old := s.plugin
	s.plugin = nil
	s.cfg = cfg
	s.mu.Unlock()
	if old != nil {
		old.Destroy()
	}

	p := safearea.New(s.host, s.ui,
		safearea.WithLogger(s.log),
		safearea.WithViewportDetector(s.viewport),
	)
	if err := p.Load(ctx, cfg); err != nil {
		return err
	}
	if err := p.Start(ctx); err != nil {
		p.Destroy()
		return err
	}

	s.mu.Lock()
	s.plugin = p
	s.mu.Unlock()
	return s.deliver(ctx)
}

// Plugin returns the running plugin, or nil before Load.
func (s *Session) Plugin() *safearea.Plugin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plugin
}

// Config returns the configuration of the running plugin.
func (s *Session) Config() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Target is the bar set that style and visibility actions apply to.
func (s *Session) Target() systembars.Targets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return targetCycle[s.target]
}

// CycleTarget moves to the next target: both, status, navigation.
func (s *Session) CycleTarget() systembars.Targets {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = (s.target + 1) % len(targetCycle)
	return targetCycle[s.target]
}

// SetStyle applies style to the current target.
func (s *Session) SetStyle(ctx context.Context, style string) error {
	p, target, err := s.current()
	if err != nil {
		return err
	}
	return p.SetSystemBarsStyle(ctx, style, target)
}

// Hide hides the current target.
func (s *Session) Hide(ctx context.Context) error {
	p, target, err := s.current()
	if err != nil {
		return err
	}
	return p.HideSystemBars(ctx, target)
}

// Show shows the current target.
func (s *Session) Show(ctx context.Context) error {
	p, target, err := s.current()
	if err != nil {
		return err
	}
	return p.ShowSystemBars(ctx, target)
}

// SetTheme switches the device theme and waits for the resulting repaint.
func (s *Session) SetTheme(ctx context.Context, theme platform.Theme) error {
	s.host.SetTheme(theme)
	// The plugin repaints asynchronously; a no-op behind it on the same
	// queue returns once that repaint ran.
	return platform.DispatchSync(ctx, s.ui, func() {})
}

// ToggleTheme flips the device between light and dark.
func (s *Session) ToggleTheme(ctx context.Context) error {
	next := platform.ThemeDark
	if s.host.Snapshot().Theme == platform.ThemeDark {
		next = platform.ThemeLight
	}
	return s.SetTheme(ctx, next)
}

// Preset returns the inset preset the device currently reports.
func (s *Session) Preset() Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Presets[s.preset]
}

// CycleInsets moves to the next preset and delivers it.
func (s *Session) CycleInsets(ctx context.Context) error {
	s.mu.Lock()
	s.preset = (s.preset + 1) % len(Presets)
	s.mu.Unlock()
	return s.deliver(ctx)
}

// SetPreset selects the named preset and delivers it.
func (s *Session) SetPreset(ctx context.Context, name string) error {
	s.mu.Lock()
	found := false
	for i, p := range Presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			s.preset, found = i, true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return &UnknownPresetError{Name: name}
	}
	return s.deliver(ctx)
}

// Returned is what the plugin passed on from the last inset delivery.
func (s *Session) Returned() platform.WindowInsets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.returned
}

// Close destroys the running plugin.
func (s *Session) Close() {
	s.mu.Lock()
	p := s.plugin
	s.plugin = nil
	s.mu.Unlock()
	if p != nil {
		p.Destroy()
	}
}

func (s *Session) deliver(ctx context.Context) error {
	return s.Deliver(ctx, s.Preset().Insets)
}

// Deliver reports in to the content view outside of the preset cycle.
func (s *Session) Deliver(ctx context.Context, in platform.WindowInsets) error {
	var out platform.WindowInsets
	// Insets arrive on the UI thread, as on a device layout pass.
	err := platform.DispatchSync(ctx, s.ui, func() {
		out, _ = s.host.DeliverInsets(in)
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.returned = out
	s.mu.Unlock()
	return nil
}

func (s *Session) current() (*safearea.Plugin, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plugin == nil {
		return nil, "", safearea.ErrNotLoaded
	}
	return s.plugin, targetCycle[s.target].String(), nil
}
