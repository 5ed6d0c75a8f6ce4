// Package scene holds the flat, immutable table of objects the renderer
// traces rays against.
package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MaxObjects is the scene table's fixed capacity.
const MaxObjects = 1024

// ErrSceneFull is returned by Add once the scene already holds MaxObjects
// objects.
var ErrSceneFull = errors.New("scene: object table is full")

// NoHit is the sentinel object index for "no hit".
const NoHit = -1

// HitInfo describes a ray/scene intersection.
type HitInfo struct {
	T      float64   // parameter along the ray; > 0, or a miss sentinel
	Point  core.Vec3 // world-space hit point
	Normal core.Vec3 // outward unit-length surface normal
	Object int       // index into the scene table, or NoHit
}

// Scene is a fixed-capacity, append-only ordered table of Objects. It is
// built once at startup and never mutated afterward: the rendering core
// relies on this immutability to read the scene from worker goroutines
// without synchronization.
type Scene struct {
	objects []Object
}

// NewScene creates an empty scene store.
func NewScene() *Scene {
	return &Scene{objects: make([]Object, 0, MaxObjects)}
}

// Add appends obj to the scene table and returns the index it was
// assigned. Returns ErrSceneFull once MaxObjects objects have been added.
func (s *Scene) Add(obj Object) (int, error) {
	if len(s.objects) >= MaxObjects {
		return NoHit, errors.Wrapf(ErrSceneFull, "capacity %d exceeded", MaxObjects)
	}
	s.objects = append(s.objects, obj)
	return len(s.objects) - 1, nil
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.objects)
}

// At returns the object at index i. Panics if i is out of range; the
// renderer's callers (the integrator) only ever index with values
// discovered via Intersect, which are always in range.
func (s *Scene) At(i int) Object {
	return s.objects[i]
}

// OriginOf returns the origin (sphere center, or box geometric center) of
// the object at index i.
func (s *Scene) OriginOf(i int) core.Vec3 {
	return s.objects[i].Origin()
}

// Intersect performs a linear scan of every object in the scene and
// returns the closest hit within [tMin, tMax], if any.
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64) (HitInfo, bool) {
	closest := tMax
	best := HitInfo{Object: NoHit}
	hitAny := false

	for i, obj := range s.objects {
		t, normal, ok := obj.Hit(ray, tMin, closest)
		if !ok {
			continue
		}
		hitAny = true
		closest = t
		best = HitInfo{
			T:      t,
			Point:  ray.At(t),
			Normal: normal,
			Object: i,
		}
	}

	return best, hitAny
}

// EmissiveIndices returns the indices of every object whose material
// emits light.
func (s *Scene) EmissiveIndices() []int {
	var indices []int
	for i, obj := range s.objects {
		if obj.Material.IsEmissive() {
			indices = append(indices, i)
		}
	}
	return indices
}
