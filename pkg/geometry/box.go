package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// Box is an axis-aligned box primitive, given by its minimum corner and a
// positive componentwise size; the maximum corner is Origin+Size.
type Box struct {
	Origin core.Vec3
	Size   core.Vec3
}

// NewBox creates a new box. Size must be positive in every component.
func NewBox(origin, size core.Vec3) Box {
	return Box{Origin: origin, Size: size}
}

// Max returns the box's maximum corner.
func (b Box) Max() core.Vec3 {
	return b.Origin.Add(b.Size)
}

// Center returns the box's geometric center, origin + size/2.
func (b Box) Center() core.Vec3 {
	return b.Origin.Add(b.Size.Multiply(0.5))
}

// Hit intersects ray against the box using the slab method: for each axis
// it computes near/far parameters, swaps so min <= max, and folds the
// result into a running [tmin, tmax] interval, rejecting as soon as the
// interval empties. The axis that contributed the final tmin determines
// the returned outward normal, which points against the ray direction on
// that axis. Axis-aligned rays (direction component == 0) are handled by
// the IEEE-754 signed-infinity convention of division by zero, so no
// special case is needed.
func (b Box) Hit(ray core.Ray, tMin, tMax float64) (t float64, normal core.Vec3, ok bool) {
	min := [3]float64{b.Origin.X, b.Origin.Y, b.Origin.Z}
	maxC := b.Max()
	max := [3]float64{maxC.X, maxC.Y, maxC.Z}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	hitAxis := -1
	hitSign := 1.0

	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / dir[axis]
		t1 := (min[axis] - origin[axis]) * invD
		t2 := (max[axis] - origin[axis]) * invD
		sign := -1.0
		if invD < 0 {
			t1, t2 = t2, t1
			sign = 1.0
		}

		if t1 > tMin {
			tMin = t1
			hitAxis = axis
			hitSign = sign
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, core.Vec3{}, false
		}
	}

	if hitAxis < 0 {
		// The ray origin started inside the box on every axis; tMin was
		// never updated from the caller's floor, so there is no well
		// defined outward normal for a near hit.
		return 0, core.Vec3{}, false
	}

	n := core.Vec3{}
	switch hitAxis {
	case 0:
		n.X = hitSign
	case 1:
		n.Y = hitSign
	case 2:
		n.Z = hitSign
	}

	return tMin, n, true
}
