package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere is an analytic sphere primitive.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. Radius must be > 0.
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Hit solves |O + tD - C|^2 = R^2 as a quadratic in t and returns the
// nearest root within [tMin, tMax] along with the outward unit normal at
// the hit point.
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (t float64, normal core.Vec3, ok bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, core.Vec3{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return 0, core.Vec3{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	return root, outwardNormal, true
}

// Origin returns the sphere's center, used by scene.OriginOf for light
// direction sampling.
func (s Sphere) Origin() core.Vec3 {
	return s.Center
}
