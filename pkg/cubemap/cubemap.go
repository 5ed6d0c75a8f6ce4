// Package cubemap maps a unit direction vector to environment radiance
// sampled from six square face images, and loads those faces from disk.
package cubemap

import "github.com/df07/go-pathtracer/pkg/core"

// Face identifies one of the six cubemap faces.
type Face int

const (
	FaceRight Face = iota // +X
	FaceLeft              // -X
	FaceTop               // +Y
	FaceBottom            // -Y
	FaceFront             // +Z
	FaceBack              // -Z
	numFaces
)

// FaceNames gives the on-disk basename (without extension) for each face.
var FaceNames = [numFaces]string{
	FaceRight:  "right",
	FaceLeft:   "left",
	FaceTop:    "top",
	FaceBottom: "bottom",
	FaceFront:  "front",
	FaceBack:   "back",
}

// FaceImage holds one decoded cubemap face: raw 8-bit RGB pixels,
// row-major, top-left origin.
type FaceImage struct {
	Width, Height int
	Pix           []byte // len == Width*Height*3
}

// At returns the linearized (divided by 255) color of pixel (x,y),
// clamping out-of-range coordinates to the face's edge.
func (f FaceImage) At(x, y int) core.Vec3 {
	if x < 0 {
		x = 0
	}
	if x >= f.Width {
		x = f.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= f.Height {
		y = f.Height - 1
	}
	i := (y*f.Width + x) * 3
	return core.NewVec3(
		float64(f.Pix[i])/255.0,
		float64(f.Pix[i+1])/255.0,
		float64(f.Pix[i+2])/255.0,
	)
}

// Cubemap is an environment light stored as six equally-sized square face
// images, sampled by direction.
type Cubemap struct {
	Faces [numFaces]FaceImage
}

// faceUV computes the face and [-1,1]^2 (u,v) coordinates for a direction
// by the dominant-axis convention: the largest-magnitude component picks
// the face, and its sign picks the positive or negative side.
func faceUV(d core.Vec3) (face Face, u, v float64) {
	ax, ay, az := absf(d.X), absf(d.Y), absf(d.Z)

	switch {
	case ax >= ay && ax >= az:
		if d.X > 0 {
			return FaceRight, -d.Z / ax, -d.Y / ax
		}
		return FaceLeft, d.Z / ax, -d.Y / ax
	case ay >= ax && ay >= az:
		if d.Y > 0 {
			return FaceTop, d.X / ay, d.Z / ay
		}
		return FaceBottom, d.X / ay, -d.Z / ay
	default:
		if d.Z > 0 {
			return FaceFront, d.X / az, -d.Y / az
		}
		return FaceBack, -d.X / az, -d.Y / az
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// DirectionFor returns a direction vector that maps back to the center of
// pixel (x,y) on the given face: the exact inverse of faceUV/Sample,
// useful for testing the round-trip from pixel to direction and back.
func DirectionFor(face Face, x, y, width, height int) core.Vec3 {
	u := (float64(x)+0.5)/float64(width)*2 - 1
	v := (float64(y)+0.5)/float64(height)*2 - 1

	switch face {
	case FaceRight:
		return core.NewVec3(1, -v, -u).Normalize()
	case FaceLeft:
		return core.NewVec3(-1, -v, u).Normalize()
	case FaceTop:
		return core.NewVec3(u, 1, v).Normalize()
	case FaceBottom:
		return core.NewVec3(u, -1, -v).Normalize()
	case FaceFront:
		return core.NewVec3(u, -v, 1).Normalize()
	default: // FaceBack
		return core.NewVec3(-u, -v, -1).Normalize()
	}
}

// Sample returns the environment radiance for a unit direction d: the
// dominant-axis face is selected, u,v remapped from [-1,1] to [0,1],
// clamped, and indexed by nearest pixel.
func (c Cubemap) Sample(d core.Vec3) core.Vec3 {
	face, u, v := faceUV(d)
	img := c.Faces[face]
	if img.Width == 0 || img.Height == 0 {
		return core.Vec3{}
	}

	su := (u + 1) * 0.5
	sv := (v + 1) * 0.5

	px := int(su * float64(img.Width))
	py := int(sv * float64(img.Height))

	return img.At(px, py)
}
