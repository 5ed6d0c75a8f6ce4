package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPresentAllocatesOnFirstCall(t *testing.T) {
	ctx := newTestContext()
	frame := ctx.Present(1, 4, 3)

	assert.Equal(t, 4, frame.Width)
	assert.Equal(t, 3, frame.Height)
	assert.Len(t, frame.Pix, 12)
}

func TestPresentReallocatesOnSizeChange(t *testing.T) {
	ctx := newTestContext()
	ctx.Present(1, 4, 3)
	ctx.accum[0] = core.NewVec3(1, 1, 1)
	ctx.accumCount = 1
	generationBefore := ctx.generation

	frame := ctx.Present(1, 8, 6)

	assert.Equal(t, 8, frame.Width)
	assert.Equal(t, 6, frame.Height)
	assert.Len(t, ctx.accum, 48)
	assert.Greater(t, ctx.generation, generationBefore)
}

func TestPresentNormalizesByAccumCount(t *testing.T) {
	ctx := newTestContext()
	ctx.Present(1, 2, 2)

	ctx.accum[0] = core.NewVec3(2, 4, 6)
	ctx.accumCount = 2

	frame := ctx.Present(1, 2, 2)
	assert.Equal(t, core.NewVec3(1, 1, 1), frame.Pix[0])
}

func TestPresentSeedsCoarsePreviewWhenEmpty(t *testing.T) {
	ctx := newTestContext()
	frame := ctx.Present(1, 4, 4)

	assert.Greater(t, ctx.accumCount, 0.0)
	assert.Len(t, frame.Pix, 16)
}

func TestPresentClampsNormalizedValuesTo01(t *testing.T) {
	ctx := newTestContext()
	ctx.Present(1, 1, 1)

	ctx.accum[0] = core.NewVec3(10, 10, 10)
	ctx.accumCount = 1

	frame := ctx.Present(1, 1, 1)
	assert.Equal(t, core.NewVec3(1, 1, 1), frame.Pix[0])
}
