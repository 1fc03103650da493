package core

import "strconv"

// ParamKind says how a parameter's preformatted value should be read.
type ParamKind uint8

const (
	KindText ParamKind = iota
	KindInt
	KindFloat
)

// Parameter is one value shown on the HUD. Value is already formatted so the
// HUD never needs the owning type.
type Parameter struct {
	Key   string
	Label string
	Kind  ParamKind
	Value string
}

// IntParam formats an integer parameter.
func IntParam(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Kind: KindInt, Value: strconv.FormatInt(v, 10)}
}

// FloatParam formats a float parameter with three decimals.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Kind: KindFloat, Value: strconv.FormatFloat(v, 'f', 3, 64)}
}

// TextParam wraps a read-only string.
func TextParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Kind: KindText, Value: v}
}

// Float parses numeric parameters. Text parameters report false.
func (p Parameter) Float() (float64, bool) {
	if p.Kind == KindText {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParameterGroup is a titled run of parameters.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot is a point-in-time copy of everything the HUD shows.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider exposes a snapshot of displayable values.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl is a float parameter the HUD steps by Step within
// [Min, Max]. A Max not above Min leaves the range open.
type ParameterControl struct {
	Key   string
	Label string
	Step  float64
	Min   float64
	Max   float64
}

// Clamp limits v to the control's range.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.Max <= c.Min {
		return v
	}
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}

// ParameterControlsProvider lists the HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter applies a HUD adjustment, reporting false when the key
// is unknown or the value rejected.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
