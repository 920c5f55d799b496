package testing

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-drift/safearea/pkg/graphics"
	"github.com/go-drift/safearea/pkg/platform"
)

// BarState is the observable state of one fake system bar.
type BarState struct {
	Visible       bool
	AppearanceSet bool
	Light         bool
	ColorSet      bool
	Color         graphics.Color
}

// Snapshot is a copy of everything the fake window and content view hold.
// It is comparable, so two snapshots can be checked with ==.
type Snapshot struct {
	BarBackgrounds   bool
	Translucent      bool
	Bars             [2]BarState
	DecorColor       graphics.Color
	ContentColor     graphics.Color
	Padding          platform.EdgeInsets
	ListenerAttached bool
	Theme            platform.Theme
}

// Bar returns the state of bar.
func (s Snapshot) Bar(bar platform.Bar) BarState {
	return s.Bars[bar]
}

// Call is one recorded capability invocation.
type Call struct {
	Method string
	Args   string
}

func (c Call) String() string {
	if c.Args == "" {
		return c.Method
	}
	return c.Method + "(" + c.Args + ")"
}

// FakeHost implements platform.Host in memory and records every call.
type FakeHost struct {
	mu        sync.Mutex
	snap      Snapshot
	listener  platform.InsetsListener
	listeners int
	observers map[int]func(platform.Theme)
	nextObs   int
	calls     []Call
}

var _ platform.Host = (*FakeHost)(nil)

// NewFakeHost returns a host with both bars visible, legacy translucency
// on and nothing painted.
func NewFakeHost(theme platform.Theme) *FakeHost {
	h := &FakeHost{observers: make(map[int]func(platform.Theme))}
	h.snap.Theme = theme
	h.snap.Translucent = true
	h.snap.Bars[platform.BarStatus].Visible = true
	h.snap.Bars[platform.BarNavigation].Visible = true
	return h
}

// Window returns the fake window.
func (h *FakeHost) Window() platform.Window { return fakeWindow{h} }

// Content returns the fake content view.
func (h *FakeHost) Content() platform.ContentView { return fakeContent{h} }

// Theme returns the fake theme source.
func (h *FakeHost) Theme() platform.ThemeSource { return fakeTheme{h} }

// Snapshot returns the current state.
func (h *FakeHost) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap
}

// Calls returns the recorded calls in order.
func (h *FakeHost) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// ResetCalls clears the call log without touching state.
func (h *FakeHost) ResetCalls() {
	h.mu.Lock()
	h.calls = nil
	h.mu.Unlock()
}

// ListenerInstalls counts SetInsetsListener calls with a non-nil listener.
func (h *FakeHost) ListenerInstalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.listeners
}

// ThemeObservers returns the number of registered theme observers.
func (h *FakeHost) ThemeObservers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// SetTheme changes the device theme and notifies observers when it differs.
func (h *FakeHost) SetTheme(theme platform.Theme) {
	h.mu.Lock()
	if h.snap.Theme == theme {
		h.mu.Unlock()
		return
	}
	h.snap.Theme = theme
	ids := make([]int, 0, len(h.observers))
	for id := range h.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	observers := make([]func(platform.Theme), 0, len(ids))
	for _, id := range ids {
		observers = append(observers, h.observers[id])
	}
	h.mu.Unlock()

	for _, fn := range observers {
		fn(theme)
	}
}

// DeliverInsets hands in to the content view's listener, as the platform
// would on a layout pass. It returns what the listener passed on, or in
// unchanged with false when no listener is installed.
func (h *FakeHost) DeliverInsets(in platform.WindowInsets) (platform.WindowInsets, bool) {
	h.mu.Lock()
	listener := h.listener
	h.mu.Unlock()
	if listener == nil {
		return in, false
	}
	return listener(in), true
}

func (h *FakeHost) record(method, args string, mutate func(s *Snapshot)) {
	h.mu.Lock()
	h.calls = append(h.calls, Call{Method: method, Args: args})
	if mutate != nil {
		mutate(&h.snap)
	}
	h.mu.Unlock()
}

type fakeWindow struct{ h *FakeHost }

func (w fakeWindow) EnableBarBackgrounds() {
	w.h.record("EnableBarBackgrounds", "", func(s *Snapshot) {
		s.BarBackgrounds = true
		s.Translucent = false
	})
}

func (w fakeWindow) SetAppearance(bar platform.Bar, light bool) {
	w.h.record("SetAppearance", fmt.Sprintf("%s, %t", bar, light), func(s *Snapshot) {
		s.Bars[bar].AppearanceSet = true
		s.Bars[bar].Light = light
	})
}

func (w fakeWindow) SetBarColor(bar platform.Bar, color graphics.Color) {
	w.h.record("SetBarColor", fmt.Sprintf("%s, %s", bar, color), func(s *Snapshot) {
		s.Bars[bar].ColorSet = true
		s.Bars[bar].Color = color
	})
}

func (w fakeWindow) SetBackgroundColor(color graphics.Color) {
	w.h.record("Window.SetBackgroundColor", color.String(), func(s *Snapshot) {
		s.DecorColor = color
	})
}

func (w fakeWindow) ShowBar(bar platform.Bar) {
	w.h.record("ShowBar", bar.String(), func(s *Snapshot) {
		s.Bars[bar].Visible = true
	})
}

func (w fakeWindow) HideBar(bar platform.Bar) {
	w.h.record("HideBar", bar.String(), func(s *Snapshot) {
		s.Bars[bar].Visible = false
	})
}

type fakeContent struct{ h *FakeHost }

func (c fakeContent) SetBackgroundColor(color graphics.Color) {
	c.h.record("Content.SetBackgroundColor", color.String(), func(s *Snapshot) {
		s.ContentColor = color
	})
}

func (c fakeContent) SetPadding(p platform.EdgeInsets) {
	c.h.record("SetPadding", fmt.Sprintf("%g, %g, %g, %g", p.Left, p.Top, p.Right, p.Bottom), func(s *Snapshot) {
		s.Padding = p
	})
}

func (c fakeContent) SetInsetsListener(listener platform.InsetsListener) {
	c.h.mu.Lock()
	c.h.listener = listener
	if listener != nil {
		c.h.listeners++
	}
	c.h.snap.ListenerAttached = listener != nil
	c.h.calls = append(c.h.calls, Call{Method: "SetInsetsListener", Args: fmt.Sprintf("%t", listener != nil)})
	c.h.mu.Unlock()
}

type fakeTheme struct{ h *FakeHost }

func (t fakeTheme) Current() platform.Theme {
	t.h.mu.Lock()
	defer t.h.mu.Unlock()
	return t.h.snap.Theme
}

func (t fakeTheme) ObserveThemeChange(fn func(platform.Theme)) func() {
	t.h.mu.Lock()
	id := t.h.nextObs
	t.h.nextObs++
	t.h.observers[id] = fn
	t.h.mu.Unlock()

	return func() {
		t.h.mu.Lock()
		delete(t.h.observers, id)
		t.h.mu.Unlock()
	}
}
