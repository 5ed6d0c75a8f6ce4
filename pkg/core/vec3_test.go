package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Subtract(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Multiply(2))
	assert.Equal(t, NewVec3(4, 10, 18), a.MultiplyVec(b))
	assert.InDelta(t, 32.0, a.Dot(b), 1e-9)
}

func TestVec3Combine(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	got := Combine(a, 2, b, 3)
	assert.Equal(t, NewVec3(2, 3, 0), got)
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
}

func TestVec3Reflect(t *testing.T) {
	incident := NewVec3(1, -1, 0)
	normal := NewVec3(0, 1, 0)
	reflected := incident.Reflect(normal)
	assert.Equal(t, NewVec3(1, 1, 0), reflected)
}

func TestVec3ClampAndAverage(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	assert.Equal(t, NewVec3(0, 0.5, 1), v.Clamp01())
	assert.InDelta(t, (-0.5+0.5+1.5)/3, v.Average(), 1e-9)
}

func TestVec3NearZero(t *testing.T) {
	assert.True(t, NewVec3(1e-5, -1e-5, 0).NearZero())
	assert.False(t, NewVec3(0.1, 0, 0).NearZero())
}

func TestLerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(10, 10, 10)
	assert.Equal(t, NewVec3(2.5, 2.5, 2.5), Lerp(a, b, 0.25))
	assert.InDelta(t, 5.0, LerpScalar(0, 10, 0.5), 1e-9)
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))
	p := r.At(3)
	assert.Equal(t, NewVec3(3, 0, 0), p)
}

func TestVec3Max(t *testing.T) {
	a := NewVec3(1, 5, -2)
	b := NewVec3(3, 2, -1)
	assert.Equal(t, NewVec3(3, 5, -1), a.Max(b))
}

func TestVec3Negate(t *testing.T) {
	assert.Equal(t, NewVec3(-1, 2, -3), NewVec3(1, -2, 3).Negate())
}

func TestVec3LengthSquared(t *testing.T) {
	v := NewVec3(3, 4, 0)
	assert.InDelta(t, 25.0, v.LengthSquared(), 1e-9)
	assert.InDelta(t, math.Sqrt(25.0), v.Length(), 1e-9)
}
