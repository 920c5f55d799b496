// Package safearea wires system bar styling and inset handling into a host
// lifecycle and exposes the API the application calls.
//
// The public methods may be called from any goroutine. Every window or view
// mutation is handed to the host's UI-thread Dispatcher, and the methods
// return only after that work ran.
package safearea

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-drift/safearea/pkg/config"
	"github.com/go-drift/safearea/pkg/errors"
	"github.com/go-drift/safearea/pkg/graphics"
	"github.com/go-drift/safearea/pkg/logging"
	"github.com/go-drift/safearea/pkg/platform"
	"github.com/go-drift/safearea/pkg/systembars"
)

var (
	// ErrDestroyed is returned by calls made after Destroy.
	ErrDestroyed = stderrors.New("safearea: plugin destroyed")

	// ErrNotLoaded is returned by Start before Load.
	ErrNotLoaded = stderrors.New("safearea: plugin not loaded")
)

// ViewportFitDetector is the web-side collaborator that watches the
// viewport meta tag and reports whether viewport-fit=cover is active.
type ViewportFitDetector interface {
	// Attach starts reporting to fn and returns a function that stops it.
	Attach(fn func(cover bool)) (detach func())
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the plugin logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Plugin) { p.log = logging.WithComponent(l, "safearea") }
}

// WithPalette fixes the theme colors, ignoring the configured ones.
func WithPalette(palette systembars.Palette) Option {
	return func(p *Plugin) {
		p.palette = &palette
	}
}

// WithViewportDetector sets the viewport-fit collaborator attached on Start.
func WithViewportDetector(d ViewportFitDetector) Option {
	return func(p *Plugin) { p.viewport = d }
}

// Plugin owns the per-bar style state for one host window.
type Plugin struct {
	host    platform.Host
	ui      platform.Dispatcher
	log     zerolog.Logger
	palette *systembars.Palette

	// UI thread only.
	state      systembars.StyleState
	applicator *systembars.Applicator
	insets     *systembars.InsetCoordinator

	mu               sync.Mutex
	cfg              config.Config
	loading          bool
	loaded           bool
	destroyed        bool
	viewport         ViewportFitDetector
	viewportAttached bool
	detachViewport   func()
	stopTheme        func()
	viewportCover    bool
}

// New creates a plugin for host. ui must run callbacks on the thread that
// owns the host's window and views.
func New(host platform.Host, ui platform.Dispatcher, opts ...Option) *Plugin {
	p := &Plugin{
		host:          host,
		ui:            ui,
		log:           zerolog.Nop(),
		cfg:           config.Default(),
		viewportCover: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.applicator = systembars.NewApplicator(&p.state, host.Window(), host.Theme())
	p.applicator.SetLogger(p.log)
	return p
}

// Load applies the configuration: initial styles, palette, the inset
// listener on the content view and the theme-change subscription.
func (p *Plugin) Load(ctx context.Context, cfg config.Config) error {
	p.mu.Lock()
	if p.destroyed {
		p.mu.Unlock()
		return p.fail("safearea.Load", errors.KindInit, "", ErrDestroyed)
	}
	if p.loaded || p.loading {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	p.cfg = cfg
	p.viewportCover = cfg.InitialViewportFitCover
	p.mu.Unlock()

	if !cfg.InsetsHandlingDisabled() {
		p.log.Warn().
			Str("insetsHandling", cfg.SystemBars.InsetsHandling).
			Msg(`set SystemBars.insetsHandling to "disable"; other values can lead to insets being applied twice`)
	}
	palette := p.resolvePalette(cfg.Colors)

	content := p.host.Content()
	if content == nil {
		p.abortLoad()
		return p.fail("safearea.Load", errors.KindInit, "", platform.ErrNoContentView)
	}

	err := platform.DispatchSync(ctx, p.ui, func() {
		if p.isDestroyed() {
			return
		}
		p.applicator.SetPalette(palette)
		p.applicator.SetContent(content)
		if s := strings.TrimSpace(cfg.StatusBarStyle); s != "" {
			p.state.Set(systembars.ParseStyle(s), systembars.StatusBar)
		}
		if s := strings.TrimSpace(cfg.NavigationBarStyle); s != "" {
			p.state.Set(systembars.ParseStyle(s), systembars.NavigationBar)
		}
		p.applicator.PaintBackground()
		p.applicator.Repaint(p.state.Configured())

		// The content view, not the root decoration, so a keyboard
		// listener on the root keeps receiving insets.
		p.insets = systembars.NewInsetCoordinator(p.applicator, content)
		p.insets.SetLogger(p.log)
		p.insets.Attach()
	})
	if err != nil {
		p.abortLoad()
		return p.fail("safearea.Load", errors.KindDispatch, "", err)
	}

	stop := p.host.Theme().ObserveThemeChange(func(theme platform.Theme) {
		p.log.Debug().Stringer("theme", theme).Msg("device theme changed")
		if err := p.ConfigurationChanged(); err != nil && !stderrors.Is(err, ErrDestroyed) {
			errors.Report(asError(err))
		}
	})

	p.mu.Lock()
	p.loading = false
	if p.destroyed {
		p.mu.Unlock()
		stop()
		return p.fail("safearea.Load", errors.KindInit, "", ErrDestroyed)
	}
	p.stopTheme = stop
	p.loaded = true
	p.mu.Unlock()

	p.log.Debug().
		Str("statusBarStyle", cfg.StatusBarStyle).
		Str("navigationBarStyle", cfg.NavigationBarStyle).
		Bool("viewportFitCover", cfg.InitialViewportFitCover).
		Msg("safe area loaded")
	return nil
}

func (p *Plugin) abortLoad() {
	p.mu.Lock()
	p.loading = false
	p.mu.Unlock()
}

func (p *Plugin) resolvePalette(colors config.ColorsConfig) systembars.Palette {
	if p.palette != nil {
		return *p.palette
	}
	palette := systembars.DefaultPalette
	if c, err := graphics.ParseColor(colors.Dark); err == nil {
		palette.Dark = c
	} else if colors.Dark != "" {
		p.log.Warn().Err(err).Msg("ignoring colors.dark")
	}
	if c, err := graphics.ParseColor(colors.Light); err == nil {
		palette.Light = c
	} else if colors.Light != "" {
		p.log.Warn().Err(err).Msg("ignoring colors.light")
	}
	return palette
}

// Start attaches the viewport-fit detector once, when enabled by
// detectViewportFitCoverChanges. Later calls do nothing.
func (p *Plugin) Start(ctx context.Context) error {
	p.mu.Lock()
	switch {
	case p.destroyed:
		p.mu.Unlock()
		return p.fail("safearea.Start", errors.KindInit, "", ErrDestroyed)
	case !p.loaded:
		p.mu.Unlock()
		return p.fail("safearea.Start", errors.KindInit, "", ErrNotLoaded)
	case !p.cfg.DetectViewportFitCoverChanges, p.viewport == nil, p.viewportAttached:
		p.mu.Unlock()
		return nil
	}
	p.viewportAttached = true
	detector := p.viewport
	p.mu.Unlock()

	detach := detector.Attach(p.setViewportFitCover)

	p.mu.Lock()
	if p.destroyed {
		p.mu.Unlock()
		detach()
		return p.fail("safearea.Start", errors.KindInit, "", ErrDestroyed)
	}
	p.detachViewport = detach
	p.mu.Unlock()
	return nil
}

func (p *Plugin) setViewportFitCover(cover bool) {
	p.mu.Lock()
	changed := p.viewportCover != cover
	p.viewportCover = cover
	p.mu.Unlock()
	if changed {
		p.log.Debug().Bool("cover", cover).Msg("viewport-fit changed")
	}
}

// ViewportFitCover reports whether the page is in viewport-fit=cover mode.
func (p *Plugin) ViewportFitCover() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewportCover
}

// ConfigurationChanged repaints both bars against the current device
// theme. It does not wait for the repaint.
func (p *Plugin) ConfigurationChanged() error {
	return p.dispatch("safearea.ConfigurationChanged", func() {
		p.applicator.RepaintAll()
	})
}

// SetSystemBarsStyle stores style ("DARK", "LIGHT" or "DEFAULT") for target
// ("STATUS_BAR", "NAVIGATION_BAR" or empty for both) and repaints it.
// Unknown values degrade to DEFAULT and both bars.
func (p *Plugin) SetSystemBarsStyle(ctx context.Context, style, target string) error {
	return p.dispatchSync(ctx, "safearea.SetSystemBarsStyle", target, func() {
		t := p.applicator.SetStyle(style, target)
		p.log.Debug().Str("style", style).Stringer("target", t).Msg("system bars style set")
	})
}

// ShowSystemBars shows target, or both bars when target is empty.
func (p *Plugin) ShowSystemBars(ctx context.Context, target string) error {
	return p.dispatchSync(ctx, "safearea.ShowSystemBars", target, func() {
		p.applicator.Show(target)
	})
}

// HideSystemBars hides target, or both bars when target is empty.
func (p *Plugin) HideSystemBars(ctx context.Context, target string) error {
	return p.dispatchSync(ctx, "safearea.HideSystemBars", target, func() {
		p.applicator.Hide(target)
	})
}

// Destroy drops the theme subscription, the viewport detector and the
// inset listener. Calls made afterwards return ErrDestroyed.
func (p *Plugin) Destroy() {
	p.mu.Lock()
	if p.destroyed {
		p.mu.Unlock()
		return
	}
	p.destroyed = true
	stopTheme, detach := p.stopTheme, p.detachViewport
	p.stopTheme, p.detachViewport = nil, nil
	p.mu.Unlock()

	if stopTheme != nil {
		stopTheme()
	}
	if detach != nil {
		detach()
	}
	// Best effort: the UI thread may already be gone.
	_ = p.ui.Dispatch(func() {
		if p.insets != nil {
			p.insets.Detach()
		}
	})
}

func (p *Plugin) dispatch(op string, fn func()) error {
	if p.isDestroyed() {
		return p.fail(op, errors.KindDispatch, "", ErrDestroyed)
	}
	if err := p.ui.Dispatch(fn); err != nil {
		return p.fail(op, errors.KindDispatch, "", err)
	}
	return nil
}

func (p *Plugin) dispatchSync(ctx context.Context, op, target string, fn func()) error {
	if p.isDestroyed() {
		return p.fail(op, errors.KindDispatch, target, ErrDestroyed)
	}
	if err := platform.DispatchSync(ctx, p.ui, fn); err != nil {
		return p.fail(op, errors.KindDispatch, target, err)
	}
	return nil
}

func (p *Plugin) isDestroyed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.destroyed
}

func (p *Plugin) fail(op string, kind errors.ErrorKind, target string, err error) error {
	return &errors.Error{Op: op, Kind: kind, Target: target, Err: err}
}

func asError(err error) *errors.Error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e
	}
	return &errors.Error{Op: "safearea", Kind: errors.KindUnknown, Err: err}
}
