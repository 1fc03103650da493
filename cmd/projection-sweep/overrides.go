package main

import (
	"fmt"
	"strconv"
	"strings"

	"raycaster/internal/world"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type override struct {
	key   string
	value float64
}

// parseOverrides turns key=value pairs into world parameter overrides.
// Keys and values are checked against a scratch world so a typo fails
// before any scenario runs.
func parseOverrides(list kvList) ([]override, error) {
	probe := world.New(world.DefaultConfig(), nil)
	out := make([]override, 0, len(list))
	for _, kv := range list {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("override %q: expected key=value", kv)
		}
		key := strings.TrimSpace(parts[0])
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", kv, err)
		}
		if !probe.SetFloatParameter(key, v) {
			return nil, fmt.Errorf("override %q: unknown key or value out of range", kv)
		}
		out = append(out, override{key: key, value: v})
	}
	return out, nil
}

func applyOverrides(w *world.World, overrides []override) {
	for _, o := range overrides {
		w.SetFloatParameter(o.key, o.value)
	}
}
