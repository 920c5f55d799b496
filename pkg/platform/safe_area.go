package platform

import "math"

// EdgeInsets is the thickness, in pixels, obscured on each edge.
type EdgeInsets struct {
	Top, Bottom, Left, Right float64
}

// EdgeInsetsLTRB builds EdgeInsets in left, top, right, bottom order.
func EdgeInsetsLTRB(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsZero reports whether every edge is zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// Max returns the per-edge maximum of e and o.
func (e EdgeInsets) Max(o EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Top:    math.Max(e.Top, o.Top),
		Bottom: math.Max(e.Bottom, o.Bottom),
		Left:   math.Max(e.Left, o.Left),
		Right:  math.Max(e.Right, o.Right),
	}
}

// InsetType is a bit set of the kinds of window insets a platform reports.
type InsetType uint16

const (
	StatusBars InsetType = 1 << iota
	NavigationBars
	CaptionBar
	IME
	SystemGestures
	MandatorySystemGestures
	TappableElement
	DisplayCutout

	insetTypeCount = iota
)

// SystemBars covers the status bar, navigation bar and caption bar.
const SystemBars = StatusBars | NavigationBars | CaptionBar

var insetTypeNames = [insetTypeCount]string{
	"statusBars",
	"navigationBars",
	"captionBar",
	"ime",
	"systemGestures",
	"mandatorySystemGestures",
	"tappableElement",
	"displayCutout",
}

// ParseInsetType maps a single type name (as used by String) to its bit.
func ParseInsetType(name string) (InsetType, bool) {
	if name == "systemBars" {
		return SystemBars, true
	}
	for i, n := range insetTypeNames {
		if n == name {
			return 1 << i, true
		}
	}
	return 0, false
}

func (t InsetType) String() string {
	if t == SystemBars {
		return "systemBars"
	}
	s := ""
	for i, n := range insetTypeNames {
		if t&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += n
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// WindowInsets is an immutable snapshot of the insets a window delivered,
// kept per inset type. The zero value has no insets.
type WindowInsets struct {
	byType [insetTypeCount]EdgeInsets
}

// Insets returns the per-edge maximum over every type in mask.
func (w WindowInsets) Insets(mask InsetType) EdgeInsets {
	var out EdgeInsets
	for i := range w.byType {
		if mask&(1<<i) != 0 {
			out = out.Max(w.byType[i])
		}
	}
	return out
}

// WindowInsetsBuilder produces a modified copy of a WindowInsets.
type WindowInsetsBuilder struct {
	insets WindowInsets
}

// NewWindowInsetsBuilder starts from a copy of from.
func NewWindowInsetsBuilder(from WindowInsets) *WindowInsetsBuilder {
	return &WindowInsetsBuilder{insets: from}
}

// SetInsets sets every type in mask to e.
func (b *WindowInsetsBuilder) SetInsets(mask InsetType, e EdgeInsets) *WindowInsetsBuilder {
	for i := range b.insets.byType {
		if mask&(1<<i) != 0 {
			b.insets.byType[i] = e
		}
	}
	return b
}

// Build returns the resulting insets.
func (b *WindowInsetsBuilder) Build() WindowInsets {
	return b.insets
}
