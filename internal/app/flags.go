package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Tileset    string
	Frames     int
	Scale      int
	TPS        int
	Layout     string
	Seed       int64
	Mute       bool
	CPUProfile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Frames: 3, Scale: 1, TPS: 60, Layout: "bordered", Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Tileset, "tileset", c.Tileset, "BMP or PNG wall atlas; empty uses the built-in placeholder")
	fs.IntVar(&c.Frames, "frames", c.Frames, "number of wall frames laid out in one row of the tileset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Layout, "layout", c.Layout, "map layout to generate")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for layouts that scatter walls")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound effects")
	fs.StringVar(&c.CPUProfile, "cpuprofile", c.CPUProfile, "write a CPU profile to this file")
}
