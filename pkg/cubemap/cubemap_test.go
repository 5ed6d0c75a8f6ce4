package cubemap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-pathtracer/pkg/core"
)

func solidFace(w, h int, r, g, b byte) FaceImage {
	pix := make([]byte, w*h*3)
	for i := 0; i < w*h; i++ {
		pix[i*3] = r
		pix[i*3+1] = g
		pix[i*3+2] = b
	}
	return FaceImage{Width: w, Height: h, Pix: pix}
}

func TestFaceImageAtClampsOutOfRange(t *testing.T) {
	f := FaceImage{Width: 2, Height: 2, Pix: []byte{
		10, 0, 0, 20, 0, 0,
		30, 0, 0, 40, 0, 0,
	}}

	assert.Equal(t, f.At(0, 0), f.At(-5, -5))
	assert.Equal(t, f.At(1, 1), f.At(99, 99))
}

func TestFaceImageAtLinearizes(t *testing.T) {
	f := FaceImage{Width: 1, Height: 1, Pix: []byte{255, 128, 0}}
	c := f.At(0, 0)
	assert.InDelta(t, 1.0, c.X, 1e-9)
	assert.InDelta(t, 128.0/255.0, c.Y, 1e-9)
	assert.InDelta(t, 0.0, c.Z, 1e-9)
}

func TestDirectionForRoundTripsThroughFaceUV(t *testing.T) {
	faces := []Face{FaceRight, FaceLeft, FaceTop, FaceBottom, FaceFront, FaceBack}
	const w, h = 8, 8

	for _, face := range faces {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				d := DirectionFor(face, x, y, w, h)
				gotFace, u, v := faceUV(d)

				assert.Equal(t, face, gotFace)

				wantU := (float64(x)+0.5)/float64(w)*2 - 1
				wantV := (float64(y)+0.5)/float64(h)*2 - 1
				assert.InDelta(t, wantU, u, 1e-9)
				assert.InDelta(t, wantV, v, 1e-9)
			}
		}
	}
}

func TestSampleSelectsDominantAxisFace(t *testing.T) {
	var cm Cubemap
	cm.Faces[FaceRight] = solidFace(4, 4, 200, 0, 0)
	cm.Faces[FaceTop] = solidFace(4, 4, 0, 200, 0)

	right := cm.Sample(core.NewVec3(1, 0, 0))
	assert.InDelta(t, 200.0/255.0, right.X, 1e-9)

	top := cm.Sample(core.NewVec3(0, 1, 0))
	assert.InDelta(t, 200.0/255.0, top.Y, 1e-9)
}

func TestSampleUnsetFaceIsZero(t *testing.T) {
	var cm Cubemap
	c := cm.Sample(core.NewVec3(0, 0, 1))
	assert.Equal(t, core.Vec3{}, c)
}
