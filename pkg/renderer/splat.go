package renderer

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// renderCoarsePass computes one coarse-grid sampling pass at the given
// scale (1 = full resolution) and splats each coarse cell's color into the
// corresponding scale x scale tile of dest, weighted by 1/scale^2. dest
// must already be sized w*h. u,v are inverted (1-u, 1-v) so on-screen
// orientation matches the camera.
//
// Returns the weight added per destination pixel (1/scale^2); callers
// accumulate this into their running local/shared weight.
func renderCoarsePass(ctx *Context, cam CameraSnapshot, w, h, scale int, rng *rand.Rand, dest []core.Vec3) float64 {
	if scale < 1 {
		scale = 1
	}
	weight := 1.0 / float64(scale*scale)
	aspect := float64(w) / float64(h)

	coarseW := (w + scale - 1) / scale
	coarseH := (h + scale - 1) / scale

	for j := 0; j < coarseH; j++ {
		for i := 0; i < coarseW; i++ {
			u := 1 - float64(i)/float64(maxInt(coarseW-1, 1))
			v := 1 - float64(j)/float64(maxInt(coarseH-1, 1))

			color := integrator.SamplePixel(ctx.Scene, *ctx.Cubemap, cam, u, v, aspect, ctx.Config, rng)

			x0, y0 := i*scale, j*scale
			for dy := 0; dy < scale; dy++ {
				y := y0 + dy
				if y >= h {
					break
				}
				for dx := 0; dx < scale; dx++ {
					x := x0 + dx
					if x >= w {
						break
					}
					dest[y*w+x] = dest[y*w+x].Add(color.Multiply(weight))
				}
			}
		}
	}

	return weight
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
