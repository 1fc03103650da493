package core

// WallVariants is the number of distinct wall types; cell values cycle
// through 0..WallVariants when edited.
const WallVariants = 3

const (
	pillarDensity     = 0.08
	pillarClearRadius = 2
)

func init() {
	RegisterLayout("bordered", Bordered)
	RegisterLayout("pillars", Pillars)
}

// Bordered clears the map and walls in its edges with the first variant.
func Bordered(m *Map, _ int64) {
	m.Clear()
	m.Border(1)
}

// Pillars builds a bordered map and scatters single-cell pillars of random
// variants over the interior, keeping the area around the map center clear
// so a viewer spawned there is never boxed in.
func Pillars(m *Map, seed int64) {
	Bordered(m, seed)
	rng := NewRNG(seed)
	cx, cy := m.W/2, m.H/2
	for y := 1; y < m.H-1; y++ {
		for x := 1; x < m.W-1; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= pillarClearRadius*pillarClearRadius {
				continue
			}
			if !rng.Chance(pillarDensity) {
				continue
			}
			m.data[y*m.W+x] = rng.Variant(WallVariants)
		}
	}
}
