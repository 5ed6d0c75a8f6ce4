// Package renderer implements the progressive Monte Carlo accumulation
// pipeline: the shared accumulator, the worker pool that merges per-worker
// contributions into it, and the presentation pass that normalizes the
// accumulator into a displayable frame.
package renderer

import (
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/cubemap"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Context groups the shared rendering state a worker pool and a presenter
// both operate on: the scene, the cubemap, the camera, the shared
// accumulator, and the frame mutex protecting it, in place of a set of
// process-wide globals.
type Context struct {
	Scene   *scene.Scene
	Cubemap *cubemap.Cubemap
	Camera  *Camera
	Config  integrator.Config
	Logger  core.Logger

	mu         sync.Mutex
	frame      []core.Vec3 // normalized linear-RGB buffer, row-major
	accum      []core.Vec3 // running weighted sum
	accumCount float64
	generation uint32
	frameW     int
	frameH     int
}

// NewContext creates a rendering context. Frame buffers are allocated
// lazily, on the first Present call or size change.
func NewContext(sc *scene.Scene, cm *cubemap.Cubemap, cam *Camera, cfg integrator.Config, logger core.Logger) *Context {
	return &Context{
		Scene:   sc,
		Cubemap: cm,
		Camera:  cam,
		Config:  cfg,
		Logger:  logger,
	}
}

// Invalidate zeroes accum_count and bumps the generation counter. Called
// by the input collaborator on any event that changes camera state.
func (ctx *Context) Invalidate() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.accumCount = 0
	ctx.generation++
}

// SampleWeight reports the accumulator's current weighted sample count, for
// a display collaborator's on-screen sample-count readout.
func (ctx *Context) SampleWeight() float64 {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.accumCount
}

// snapshotForMerge reports the current generation and dimensions, used by
// a worker to decide whether its in-flight local accumulator is still
// valid and correctly sized; see worker.runPass.
func (ctx *Context) snapshotForMerge() (generation uint32, w, h int) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.generation, ctx.frameW, ctx.frameH
}

// merge adds a worker's local accumulator into the shared one if the
// worker's cached generation still matches the current generation;
// otherwise the local sum is stale and is discarded without merging.
func (ctx *Context) merge(localGeneration uint32, local []core.Vec3, weight float64) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if localGeneration != ctx.generation || len(local) != len(ctx.accum) {
		return
	}
	for i, c := range local {
		ctx.accum[i] = ctx.accum[i].Add(c)
	}
	ctx.accumCount += weight
}
