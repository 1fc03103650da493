package core

import "sort"

// Layout populates a freshly allocated map. Layouts are compiled in; the
// seed only matters for layouts that scatter content.
type Layout func(m *Map, seed int64)

var layouts = map[string]Layout{}

// RegisterLayout adds a map layout under the provided name.
func RegisterLayout(name string, l Layout) {
	if name == "" || l == nil {
		return
	}
	layouts[name] = l
}

// Layouts exposes the registry of available map layouts.
func Layouts() map[string]Layout {
	return layouts
}

// LayoutNames returns the registered layout names in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
