package core

// Cell identifies the contents of a single map cell. Zero is empty floor; any
// other value selects a wall variant whose texture frame is Cell-1.
type Cell uint32

// Empty is the passable cell value.
const Empty Cell = 0

// Map stores a fixed-size 2D grid of cell values in row-major order.
type Map struct {
	W, H int
	data []Cell
}

// NewMap allocates an empty map with the given dimensions.
func NewMap(w, h int) *Map {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Map{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (m *Map) Cells() []Cell { return m.data }

// Dimensions returns the map width and height in cells.
func (m *Map) Dimensions() (int, int) { return m.W, m.H }

// Index returns the linear slice index for coordinates (x, y).
func (m *Map) Index(x, y int) int { return y*m.W + x }

// Coords converts a linear index back to (x, y).
func (m *Map) Coords(i int) (int, int) { return i % m.W, i / m.W }

// InBounds reports whether (x, y) addresses a cell of the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// Get returns the cell at linear index i. The index must be in range.
func (m *Map) Get(i int) Cell { return m.data[i] }

// Set stores c at linear index i. The index must be in range.
func (m *Map) Set(i int, c Cell) { m.data[i] = c }

// At returns the cell at (x, y), treating anything outside the map as empty.
func (m *Map) At(x, y int) Cell {
	if !m.InBounds(x, y) {
		return Empty
	}
	return m.data[y*m.W+x]
}

// Solid reports whether (x, y) blocks movement. Cells outside the map are solid.
func (m *Map) Solid(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.data[y*m.W+x] != Empty
}

// Toggle advances the cell at index i to the next value in the cycle
// 0, 1, ..., variants, 0 and returns the new value.
func (m *Map) Toggle(i int, variants int) Cell {
	if variants <= 0 {
		return m.data[i]
	}
	next := (m.data[i] + 1) % Cell(variants+1)
	m.data[i] = next
	return next
}

// Border fills every edge cell with c.
func (m *Map) Border(c Cell) {
	for x := 0; x < m.W; x++ {
		m.data[x] = c
		m.data[(m.H-1)*m.W+x] = c
	}
	for y := 1; y < m.H-1; y++ {
		m.data[y*m.W] = c
		m.data[y*m.W+m.W-1] = c
	}
}

// Clear fills the map with empty cells.
func (m *Map) Clear() {
	for i := range m.data {
		m.data[i] = Empty
	}
}
