package world

import "math"

// Config holds the compiled-in map, screen and viewer parameters.
type Config struct {
	MapW int
	MapH int

	// ScreenW and ScreenH size the rendered scene in pixels.
	ScreenW int
	ScreenH int
	// CellSize is the number of overhead-view pixels per map cell.
	CellSize int

	WallVariants int
	Seed         int64

	Viewer ViewerParams
}

// ViewerParams controls movement and projection. Distances are in cells.
type ViewerParams struct {
	FOV          float64 // radians
	Speed        float64 // cells per second
	AngularSpeed float64 // radians per second
	// Projection scales wall heights: height = Projection*ScreenH/distance.
	Projection  float64
	MaxDistance float64
}

// DefaultConfig returns the standard configuration: a 16x16 map drawn into a
// 512x512 view with 32 pixel cells in the overhead view.
func DefaultConfig() Config {
	return Config{
		MapW:         16,
		MapH:         16,
		ScreenW:      512,
		ScreenH:      512,
		CellSize:     32,
		WallVariants: 3,
		Seed:         1337,
		Viewer: ViewerParams{
			FOV:          math.Pi / 3,
			Speed:        50.0 / 32.0,
			AngularSpeed: 3,
			Projection:   25.0 / 32.0,
			MaxDistance:  100,
		},
	}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.MapW <= 0 {
		c.MapW = def.MapW
	}
	if c.MapH <= 0 {
		c.MapH = def.MapH
	}
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.CellSize <= 0 {
		c.CellSize = def.CellSize
	}
	if c.WallVariants <= 0 {
		c.WallVariants = def.WallVariants
	}
	if c.Viewer.FOV <= 0 || c.Viewer.FOV >= math.Pi {
		c.Viewer.FOV = def.Viewer.FOV
	}
	if c.Viewer.Projection <= 0 {
		c.Viewer.Projection = def.Viewer.Projection
	}
	if c.Viewer.MaxDistance <= 0 {
		c.Viewer.MaxDistance = def.Viewer.MaxDistance
	}
	if c.Viewer.Speed < 0 {
		c.Viewer.Speed = def.Viewer.Speed
	}
	if c.Viewer.AngularSpeed < 0 {
		c.Viewer.AngularSpeed = def.Viewer.AngularSpeed
	}
	return c
}
