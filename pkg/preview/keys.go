package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview keybindings.
type KeyMap struct {
	Dark     key.Binding
	Light    key.Binding
	Default  key.Binding
	Target   key.Binding
	Theme    key.Binding
	Hide     key.Binding
	Show     key.Binding
	Insets   key.Binding
	Viewport key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dark, k.Light, k.Default, k.Target, k.Theme, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dark, k.Light, k.Default, k.Target},
		{k.Hide, k.Show, k.Theme},
		{k.Insets, k.Viewport},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark"),
		),
		Light: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "light"),
		),
		Default: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "default"),
		),
		Target: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "target"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "device theme"),
		),
		Hide: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide"),
		),
		Show: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show"),
		),
		Insets: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "next insets"),
		),
		Viewport: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "viewport-fit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
