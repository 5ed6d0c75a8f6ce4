package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Kind tags which primitive an Object wraps.
type Kind int

const (
	// KindSphere identifies a sphere-shaped Object.
	KindSphere Kind = iota
	// KindBox identifies a box-shaped Object.
	KindBox
)

// Object is a tagged union over {Sphere, Box} plus a Material. No dynamic
// dispatch is used since the primitive set is closed; Hit and Origin
// switch on Kind directly.
type Object struct {
	Kind     Kind
	Sphere   geometry.Sphere
	Box      geometry.Box
	Material material.Material
}

// NewSphereObject creates a sphere-shaped Object.
func NewSphereObject(sphere geometry.Sphere, mat material.Material) Object {
	return Object{Kind: KindSphere, Sphere: sphere, Material: mat}
}

// NewBoxObject creates a box-shaped Object.
func NewBoxObject(box geometry.Box, mat material.Material) Object {
	return Object{Kind: KindBox, Box: box, Material: mat}
}

// Hit intersects ray against this object's primitive.
func (o Object) Hit(ray core.Ray, tMin, tMax float64) (t float64, normal core.Vec3, ok bool) {
	switch o.Kind {
	case KindSphere:
		return o.Sphere.Hit(ray, tMin, tMax)
	case KindBox:
		return o.Box.Hit(ray, tMin, tMax)
	default:
		return 0, core.Vec3{}, false
	}
}

// Origin returns the sphere's center or the box's geometric center.
func (o Object) Origin() core.Vec3 {
	switch o.Kind {
	case KindSphere:
		return o.Sphere.Origin()
	case KindBox:
		return o.Box.Center()
	default:
		return core.Vec3{}
	}
}
