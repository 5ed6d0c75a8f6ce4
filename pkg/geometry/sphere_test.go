package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSphereHit(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 5), 1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	t_, normal, ok := s.Hit(ray, 1e-4, 1e38)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, t_, 1e-9)

	hitPoint := ray.At(t_)
	assert.InDelta(t, s.Radius, hitPoint.Subtract(s.Center).Length(), 1e-4*s.Radius)
	assert.LessOrEqual(t, normal.Dot(ray.Direction), 0.0)
	assert.InDelta(t, 1.0, normal.Length(), 1e-9)
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(core.NewVec3(5, 5, 5), 1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	_, _, ok := s.Hit(ray, 1e-4, 1e38)
	assert.False(t, ok)
}

func TestSphereHitBehindRay(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	_, _, ok := s.Hit(ray, 1e-4, 1e38)
	assert.False(t, ok)
}

func TestSphereHitFromInside(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 2)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	t_, normal, ok := s.Hit(ray, 1e-4, 1e38)
	assert.True(t, ok)
	assert.InDelta(t, 2.0, t_, 1e-9)
	assert.InDelta(t, 1.0, normal.X, 1e-9)
}

func TestSphereOrigin(t *testing.T) {
	s := NewSphere(core.NewVec3(1, 2, 3), 1)
	assert.Equal(t, core.NewVec3(1, 2, 3), s.Origin())
}
