package preview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/safearea/pkg/config"
	"github.com/go-drift/safearea/pkg/platform"
	"github.com/go-drift/safearea/pkg/safearea"
	drifttest "github.com/go-drift/safearea/pkg/testing"
)

// ConfigReloadedMsg tells the model the config file changed.
type ConfigReloadedMsg struct {
	Config config.Config
}

// ConfigErrorMsg reports a config file that could not be reloaded.
type ConfigErrorMsg struct {
	Err error
}

// actionDoneMsg is sent when a plugin call returns.
type actionDoneMsg struct {
	note  string
	err   error
	state *safearea.State
}

// Model is the Bubble Tea model for the interactive preview.
type Model struct {
	ctx     context.Context
	session *Session
	keys    KeyMap
	help    help.Model
	styles  Styles

	width  int
	status string
	err    error
	state  safearea.State
}

// NewModel creates a preview over a loaded session.
func NewModel(ctx context.Context, session *Session) Model {
	return Model{
		ctx:     ctx,
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  DefaultStyles(),
		width:   80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.run("ready", func(context.Context) error { return nil })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case actionDoneMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.note
		}
		if msg.state != nil {
			m.state = *msg.state
		}
		return m, nil

	case ConfigReloadedMsg:
		cfg := msg.Config
		return m, m.run("config reloaded", func(ctx context.Context) error {
			return m.session.Load(ctx, cfg)
		})

	case ConfigErrorMsg:
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Target):
		m.status = "target " + s.CycleTarget().String()
		return m, nil

	case key.Matches(msg, m.keys.Dark):
		return m, m.style("DARK")
	case key.Matches(msg, m.keys.Light):
		return m, m.style("LIGHT")
	case key.Matches(msg, m.keys.Default):
		return m, m.style("DEFAULT")

	case key.Matches(msg, m.keys.Hide):
		return m, m.run("hid "+s.Target().String(), s.Hide)
	case key.Matches(msg, m.keys.Show):
		return m, m.run("showed "+s.Target().String(), s.Show)

	case key.Matches(msg, m.keys.Theme):
		return m, m.run("device theme flipped", s.ToggleTheme)

	case key.Matches(msg, m.keys.Insets):
		return m, m.run("insets changed", s.CycleInsets)

	case key.Matches(msg, m.keys.Viewport):
		cover := true
		if p := s.Plugin(); p != nil {
			cover = !p.ViewportFitCover()
		}
		s.Viewport().Report(cover)
		return m, m.run(fmt.Sprintf("viewport-fit cover=%t", cover), func(context.Context) error { return nil })
	}
	return m, nil
}

func (m Model) style(style string) tea.Cmd {
	s := m.session
	note := fmt.Sprintf("%s -> %s", s.Target(), style)
	return m.run(note, func(ctx context.Context) error {
		return s.SetStyle(ctx, style)
	})
}

// run calls fn off the update loop; plugin calls block until the UI
// thread ran them.
func (m Model) run(note string, fn func(context.Context) error) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		msg := actionDoneMsg{note: note, err: fn(ctx)}
		if p := s.Plugin(); p != nil {
			if st, err := p.State(ctx); err == nil {
				msg.state = &st
			}
		}
		return msg
	}
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.session.Host().Snapshot()
	preset := m.session.Preset()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("safe area preview"))
	b.WriteString("\n\n")

	phone := m.styles.Phone.Render(RenderPhone(snap, preset.Insets, m.styles))
	info := m.renderInfo(snap, preset)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, phone, "  ", info))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
	} else if m.status != "" {
		b.WriteString(m.styles.Subtle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderInfo(snap drifttest.Snapshot, preset Preset) string {
	line := func(label, value string) string {
		return m.styles.Label.Render(fmt.Sprintf("%-16s", label)) + m.styles.Value.Render(value)
	}
	bar := func(b safearea.BarState, visible bool) string {
		v := b.Effective.String()
		if b.Set {
			v += " (requested " + b.Requested.String() + ")"
		} else {
			v += " (unset)"
		}
		if !visible {
			v += " hidden"
		}
		return v
	}
	out := m.session.Returned()
	lines := []string{
		line("device theme", snap.Theme.String()),
		line("target", m.session.Target().String()),
		line("status bar", bar(m.state.StatusBar, snap.Bar(platform.BarStatus).Visible)),
		line("navigation bar", bar(m.state.NavigationBar, snap.Bar(platform.BarNavigation).Visible)),
		line("content color", snap.ContentColor.Hex()),
		line("insets", preset.Name),
		line("padding", formatInsets(snap.Padding)),
		line("passed on", "bars "+formatInsets(out.Insets(platform.SystemBars))),
		line("", "ime  "+formatInsets(out.Insets(platform.IME))),
		line("viewport-fit", viewportFit(m.state.ViewportFitCover)),
	}
	return strings.Join(lines, "\n")
}

func viewportFit(cover bool) string {
	if cover {
		return "cover"
	}
	return "auto"
}

func formatInsets(e platform.EdgeInsets) string {
	return fmt.Sprintf("l%g t%g r%g b%g", e.Left, e.Top, e.Right, e.Bottom)
}

// RenderPhone draws the device screen: status bar, padded content, keyboard
// and navigation bar.
func RenderPhone(snap drifttest.Snapshot, in platform.WindowInsets, st Styles) string {
	var lines []string

	content := fill(snap.ContentColor)
	if status := snap.Bar(platform.BarStatus); status.Visible {
		lines = append(lines, barLine(status, " 9:41", "▮▮▮ ", st))
	}
	for i := 0; i < rows(snap.Padding.Top); i++ {
		lines = append(lines, content.Faint(true).Render(fmt.Sprintf(" padding %gdp", snap.Padding.Top)))
	}

	keyboard := rows(in.Insets(platform.IME).Bottom / 2)
	body := 10 - keyboard
	if body < 2 {
		body = 2
	}
	lines = append(lines, content.Render(" web content"))
	for i := 1; i < body; i++ {
		lines = append(lines, content.Render(""))
	}
	for i := 0; i < keyboard; i++ {
		lines = append(lines, st.Keyboard.Width(phoneWidth).Render(keyboardRow(i)))
	}

	if nav := snap.Bar(platform.BarNavigation); nav.Visible {
		lines = append(lines, barLine(nav, "      ◁", "○      □      ", st))
	}
	return strings.Join(lines, "\n")
}

func barLine(bar drifttest.BarState, left, right string, st Styles) string {
	style := st.Unstyled.Width(phoneWidth)
	if bar.ColorSet {
		style = fill(bar.Color)
	}
	if bar.AppearanceSet {
		style = style.Foreground(lipgloss.Color(rgbHex(iconColor(bar.Light))))
	}
	gap := phoneWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return style.Render(left + strings.Repeat(" ", gap) + right)
}

var keyboardRows = []string{" q w e r t y u i o p", "  a s d f g h j k l", "   z x c v b n m", "      [ space ]"}

func keyboardRow(i int) string {
	return keyboardRows[i%len(keyboardRows)]
}
