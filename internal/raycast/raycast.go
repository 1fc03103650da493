// Package raycast finds the first occupied map cell along a ray using
// incremental grid traversal (DDA).
package raycast

import (
	"math"

	"raycaster/internal/core"
)

// DefaultMaxDistance caps traversal, in cell widths. It bounds the number of
// iterations for rays that never meet a wall.
const DefaultMaxDistance = 100.0

// Axis names the grid axis whose boundary a ray crossed.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Hit records where a ray met an occupied cell.
type Hit struct {
	// Point is the exact intersection in cell units.
	Point core.Vec2
	// Distance travelled along the normalised ray.
	Distance float64
	// Index is the linear map index of the hit cell.
	Index    int
	Col, Row int
	Type     core.Cell
	// Side is the axis stepped to enter the hit cell.
	Side Axis
}

// Caster casts rays against a map.
type Caster struct {
	m           *core.Map
	maxDistance float64
}

// New returns a Caster for m. A non-positive maxDistance selects
// DefaultMaxDistance.
func New(m *core.Map, maxDistance float64) *Caster {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}
	return &Caster{m: m, maxDistance: maxDistance}
}

// MaxDistance returns the traversal cap.
func (c *Caster) MaxDistance() float64 { return c.maxDistance }

// SetMaxDistance changes the traversal cap. Non-positive values are ignored.
func (c *Caster) SetMaxDistance(d float64) {
	if d > 0 {
		c.maxDistance = d
	}
}

// Cast walks the grid from origin along dir and returns the first non-empty
// cell. The second result is false when no wall lies within the distance cap
// or the ray leaves the map. dir does not need unit length; a zero vector
// never hits.
func (c *Caster) Cast(origin, dir core.Vec2) (Hit, bool) {
	dir = dir.Normalize()
	if dir.X == 0 && dir.Y == 0 {
		return Hit{}, false
	}

	unit := core.Vec2{X: unitStep(dir.X, dir.Y), Y: unitStep(dir.Y, dir.X)}
	col := int(math.Floor(origin.X))
	row := int(math.Floor(origin.Y))

	var side core.Vec2
	stepX, stepY := 1, 1
	if dir.X < 0 {
		stepX = -1
		side.X = (origin.X - float64(col)) * unit.X
	} else {
		side.X = (float64(col) + 1 - origin.X) * unit.X
	}
	if dir.Y < 0 {
		stepY = -1
		side.Y = (origin.Y - float64(row)) * unit.Y
	} else {
		side.Y = (float64(row) + 1 - origin.Y) * unit.Y
	}

	w, h := c.m.Dimensions()
	cells := c.m.Cells()
	distance := 0.0
	for {
		var axis Axis
		// x wins ties so identical rays always visit cells in the same order.
		if side.X <= side.Y {
			col += stepX
			distance = side.X
			side.X += unit.X
			axis = AxisX
		} else {
			row += stepY
			distance = side.Y
			side.Y += unit.Y
			axis = AxisY
		}

		if distance > c.maxDistance {
			return Hit{}, false
		}
		if leaving(col, stepX, w) || leaving(row, stepY, h) {
			return Hit{}, false
		}
		if col < 0 || col >= w || row < 0 || row >= h {
			continue
		}
		i := row*w + col
		if cells[i] == core.Empty {
			continue
		}
		return Hit{
			Point:    origin.Add(dir.Scale(distance)),
			Distance: distance,
			Index:    i,
			Col:      col,
			Row:      row,
			Type:     cells[i],
			Side:     axis,
		}, true
	}
}

// unitStep is the ray length needed to cross one cell along the axis whose
// direction component is a. Axis-parallel rays never cross that axis.
func unitStep(a, b float64) float64 {
	if a == 0 {
		return math.Inf(1)
	}
	r := b / a
	return math.Sqrt(1 + r*r)
}

// leaving reports whether index i is outside [0, n) and still moving away.
func leaving(i, step, n int) bool {
	return (i < 0 && step < 0) || (i >= n && step > 0)
}
