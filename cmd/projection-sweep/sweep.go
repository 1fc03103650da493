package main

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"raycaster/internal/core"
	"raycaster/internal/render"
	"raycaster/internal/texture"
	"raycaster/internal/world"
)

const tickDT = 1.0 / 30.0

type paramSet struct {
	fovDeg      float64
	projection  float64
	maxDistance float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("fov=%.0f k=%.3f maxDist=%.0f", p.fovDeg, p.projection, p.maxDistance)
}

type scenarioResult struct {
	params   paramSet
	frames   int
	coverage float64 // fraction of columns that hit a wall
	fill     float64 // mean slice height over screen height, hit columns only
	clamped  float64 // fraction of hit columns drawn at full height
	bumps    int
	travel   float64 // cells walked by the viewer
	elapsed  time.Duration
}

// walk is the scripted input replayed for every scenario.
var walk = []struct {
	ticks int
	in    world.Input
}{
	{40, world.Input{Move: 1}},
	{15, world.Input{Turn: 1}},
	{30, world.Input{Move: 1, Strafe: 0.5}},
	{20, world.Input{Turn: -1}},
	{25, world.Input{Move: -1}},
	{10, world.Input{Strafe: -1}},
}

type bumpCounter struct{ n int }

func (b *bumpCounter) OnBump(core.Vec2)                { b.n++ }
func (b *bumpCounter) OnCellEdit(int, int, core.Cell) {}

func defaultParams() paramSet {
	v := world.DefaultConfig().Viewer
	return paramSet{fovDeg: v.FOV * 180 / math.Pi, projection: v.Projection, maxDistance: v.MaxDistance}
}

func paramGrid() []paramSet {
	var sets []paramSet
	for _, fov := range []float64{45, 60, 75, 90} {
		for _, k := range []float64{0.5, 25.0 / 32.0, 1, 1.25} {
			for _, dist := range []float64{6, 12, 100} {
				sets = append(sets, paramSet{fovDeg: fov, projection: k, maxDistance: dist})
			}
		}
	}
	return sets
}

// sweep runs every parameter set across workers goroutines. Each worker owns
// its world and frame buffer; only results cross goroutines.
func sweep(base world.Config, layout core.Layout, atlas *texture.Atlas, sets []paramSet, overrides []override, steps, workers, w, h int) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			proj := render.NewProjector(atlas)
			fb := render.NewFrameBuffer(w, h)
			for params := range jobs {
				results <- runScenario(base, layout, proj, fb, params, overrides, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].coverage != all[j].coverage {
			return all[i].coverage > all[j].coverage
		}
		return all[i].params.String() < all[j].params.String()
	})
	return all
}

func runScenario(base world.Config, layout core.Layout, proj *render.Projector, fb *render.FrameBuffer, params paramSet, overrides []override, steps int) scenarioResult {
	wld := world.New(base, layout)
	bumps := &bumpCounter{}
	wld.SetListener(bumps)
	wld.SetFloatParameter(world.KeyFOV, params.fovDeg)
	wld.SetFloatParameter(world.KeyProjection, params.projection)
	wld.SetFloatParameter(world.KeyMaxDistance, params.maxDistance)
	applyOverrides(wld, overrides)

	start := time.Now()
	var columns, hits, clamped int
	var fill, travel float64
	frame := 0
	for step := 0; step < steps; {
		for _, seg := range walk {
			for i := 0; i < seg.ticks && step < steps; i++ {
				before := wld.Viewer().Pos
				wld.Update(tickDT, seg.in)
				travel += before.Dist(wld.Viewer().Pos)
				proj.Render(fb, wld)
				for col := 0; col < fb.W; col++ {
					columns++
					s, ok := proj.Column(wld, col, fb.W, fb.H)
					if !ok {
						continue
					}
					hits++
					fill += float64(s.Height) / float64(fb.H)
					if s.Height == fb.H {
						clamped++
					}
				}
				frame++
				step++
			}
		}
	}

	res := scenarioResult{params: params, frames: frame, bumps: bumps.n, travel: travel, elapsed: time.Since(start)}
	if columns > 0 {
		res.coverage = float64(hits) / float64(columns)
	}
	if hits > 0 {
		res.fill = fill / float64(hits)
		res.clamped = float64(clamped) / float64(hits)
	}
	return res
}
