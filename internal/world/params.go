package world

import (
	"math"

	"raycaster/internal/core"
)

// Parameter keys accepted by SetFloatParameter.
const (
	KeyFOV          = "fov_deg"
	KeyProjection   = "projection_k"
	KeyMaxDistance  = "max_distance"
	KeySpeed        = "speed"
	KeyAngularSpeed = "angular_speed"
)

// Parameters reports the viewer state and the adjustable projection values.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Viewer
	groups := []core.ParameterGroup{
		{
			Name: "Viewer",
			Params: []core.Parameter{
				core.FloatParam("x", "X", w.viewer.Pos.X),
				core.FloatParam("y", "Y", w.viewer.Pos.Y),
				core.FloatParam("heading_deg", "Heading", normalizeDegrees(w.viewer.Heading*180/math.Pi)),
				core.TextParam("mode", "View", w.mode.String()),
			},
		},
		{
			Name: "Projection",
			Params: []core.Parameter{
				core.FloatParam(KeyFOV, "FOV (deg)", p.FOV*180/math.Pi),
				core.FloatParam(KeyProjection, "Wall scale K", p.Projection),
				core.FloatParam(KeyMaxDistance, "Max distance", p.MaxDistance),
			},
		},
		{
			Name: "Movement",
			Params: []core.Parameter{
				core.FloatParam(KeySpeed, "Speed", p.Speed),
				core.FloatParam(KeyAngularSpeed, "Turn speed", p.AngularSpeed),
			},
		},
		{
			Name: "Map",
			Params: []core.Parameter{
				core.IntParam("map_w", "Width", int64(w.cfg.MapW)),
				core.IntParam("map_h", "Height", int64(w.cfg.MapH)),
				core.IntParam("seed", "Seed", w.cfg.Seed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD can adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		floatControl(KeyFOV, "FOV", 5, 10, 170),
		floatControl(KeyProjection, "Wall K", 0.05, 0.05, 4),
		floatControl(KeyMaxDistance, "Max dist", 5, 1, 500),
		floatControl(KeySpeed, "Speed", 0.25, 0, 10),
		floatControl(KeyAngularSpeed, "Turn", 0.25, 0, 10),
	}
}

// SetFloatParameter applies a HUD or tool adjustment. It reports false for
// unknown keys and out-of-range values.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	p := &w.cfg.Viewer
	switch key {
	case KeyFOV:
		if value <= 0 || value >= 180 {
			return false
		}
		p.FOV = value * math.Pi / 180
	case KeyProjection:
		if value <= 0 {
			return false
		}
		p.Projection = value
	case KeyMaxDistance:
		if value <= 0 {
			return false
		}
		p.MaxDistance = value
		w.caster.SetMaxDistance(value)
	case KeySpeed:
		if value < 0 {
			return false
		}
		p.Speed = value
	case KeyAngularSpeed:
		if value < 0 {
			return false
		}
		p.AngularSpeed = value
	default:
		return false
	}
	return true
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func floatControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{Key: key, Label: label, Step: step, Min: min, Max: max}
}
