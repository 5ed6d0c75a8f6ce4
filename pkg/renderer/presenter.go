package renderer

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// previewScale is the coarseness of the seed preview rendered directly by
// Present when the accumulator is empty: 1/16 horizontal and vertical
// resolution.
const previewScale = 16

// Frame is a linear-RGB pixel buffer, row-major, with values in [0,1]
// once normalized.
type Frame struct {
	Width, Height int
	Pix           []core.Vec3
}

// presenterRNGSeed seeds the RNG that Present creates afresh for each
// preview pass, so every seeded preview uses the same random sequence.
var presenterRNGSeed int64 = 1

// Present snapshots the accumulator, seeding a coarse preview first if it
// is empty, normalizes by sample count, and returns a Frame ready to hand
// to the display collaborator. scale is the requested resolution scale
// (1 = native); screenW/screenH are the display's native pixel
// dimensions.
func (ctx *Context) Present(scale, screenW, screenH int) Frame {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	w, h := scale*screenW, scale*screenH
	if w != ctx.frameW || h != ctx.frameH {
		ctx.frameW, ctx.frameH = w, h
		ctx.frame = make([]core.Vec3, w*h)
		ctx.accum = make([]core.Vec3, w*h)
		ctx.accumCount = 0
		ctx.generation++
	}

	if ctx.accumCount == 0 && w > 0 && h > 0 {
		cam := ctx.Camera.Snapshot()
		rng := rand.New(rand.NewSource(presenterRNGSeed))
		weight := renderCoarsePass(ctx, cam, w, h, previewScale, rng, ctx.accum)
		ctx.accumCount = weight
	}

	for i := range ctx.frame {
		if ctx.accumCount > 0 {
			ctx.frame[i] = ctx.accum[i].Multiply(1.0 / ctx.accumCount).Clamp01()
		} else {
			ctx.frame[i] = core.Vec3{}
		}
	}

	return Frame{Width: w, Height: h, Pix: ctx.frame}
}
