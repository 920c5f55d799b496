package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/safearea/pkg/graphics"
)

const (
	phoneWidth = 34
	// dpPerRow maps device-independent pixels to terminal rows.
	dpPerRow = 24
)

// Styles holds the chrome around the simulated phone.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Subtle   lipgloss.Style
	Error    lipgloss.Style
	Phone    lipgloss.Style
	Keyboard lipgloss.Style
	Unstyled lipgloss.Style
}

// DefaultStyles returns the preview styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#909090")),
		Value:    lipgloss.NewStyle().Bold(true),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#606060")).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")),
		Phone:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#333333")),
		Keyboard: lipgloss.NewStyle().Background(lipgloss.Color("#3f3f46")).Foreground(lipgloss.Color("#e4e4e7")),
		Unstyled: lipgloss.NewStyle().Background(lipgloss.Color("#71717a")).Foreground(lipgloss.Color("#fafafa")),
	}
}

// fill returns a style painting c across the phone width.
func fill(c graphics.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(phoneWidth).
		Background(lipgloss.Color(rgbHex(c))).
		Foreground(lipgloss.Color(rgbHex(contrast(c))))
}

// rgbHex drops alpha; terminals cannot blend.
func rgbHex(c graphics.Color) string {
	r, g, b, _ := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func contrast(c graphics.Color) graphics.Color {
	if c.IsLight() {
		return graphics.ColorBlack
	}
	return graphics.ColorWhite
}

// iconColor is the glyph color a bar draws with for an appearance. Light
// appearance means dark icons.
func iconColor(light bool) graphics.Color {
	if light {
		return graphics.ColorBlack
	}
	return graphics.ColorWhite
}

func rows(dp float64) int {
	if dp <= 0 {
		return 0
	}
	n := int(dp) / dpPerRow
	if int(dp)%dpPerRow != 0 {
		n++
	}
	return n
}
