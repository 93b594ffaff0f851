package pattern

import (
	"sort"

	"lifegrid/internal/core"
)

var presets = map[string]core.Pattern{}

// Register adds a built-in pattern under the provided name.
func Register(p core.Pattern) {
	if p.Name == "" {
		return
	}
	presets[p.Name] = p
}

// Preset looks up a built-in pattern.
func Preset(name string) (core.Pattern, bool) {
	p, ok := presets[name]
	return p, ok
}

// Names lists the registered presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func points(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func init() {
	Register(core.Pattern{Name: "glider", W: 3, H: 3,
		Cells: points(1, 0, 2, 1, 0, 2, 1, 2, 2, 2)})
	Register(core.Pattern{Name: "blinker", W: 3, H: 3,
		Cells: points(1, 0, 1, 1, 1, 2)})
	Register(core.Pattern{Name: "lwss", W: 5, H: 4,
		Cells: points(1, 0, 4, 0, 0, 1, 0, 2, 4, 2, 0, 3, 1, 3, 2, 3, 3, 3)})
	Register(core.Pattern{Name: "mwss", W: 5, H: 4,
		Cells: points(1, 0, 2, 0, 3, 0, 4, 0, 0, 1, 4, 1, 4, 2, 0, 3, 3, 3)})
}
