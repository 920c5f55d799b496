package preview

import (
	"fmt"
	"strings"
)

// UnknownPresetError is returned for an inset preset name that does not exist.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return fmt.Sprintf("unknown inset preset %q (want one of %s)", e.Name, strings.Join(names, ", "))
}
