package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomInUnitSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(rng)
		assert.Less(t, p.LengthSquared(), 1.0)
	}
}

func TestRandomUnitVector(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(rng)
		assert.InDelta(t, 1.0, v.Length(), 1e-9)
	}
}

func TestRandomHemisphereDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	normal := NewVec3(0, 0, 1)
	for i := 0; i < 1000; i++ {
		dir := RandomHemisphereDirection(normal, rng)
		assert.InDelta(t, 1.0, dir.Length(), 1e-9)
		assert.GreaterOrEqual(t, dir.Dot(normal), 0.0)
	}
}

func TestSchlickFresnelAtNormalIncidence(t *testing.T) {
	f0 := NewVec3(0.04, 0.04, 0.04)
	f := SchlickFresnel(f0, 1.0)
	assert.InDelta(t, f0.X, f.X, 1e-9)
}

func TestSchlickFresnelAtGrazingAngle(t *testing.T) {
	f0 := NewVec3(0.04, 0.04, 0.04)
	f := SchlickFresnel(f0, 0.0)
	assert.InDelta(t, 1.0, f.X, 1e-9)
}

func TestSchlickFresnelMonotonic(t *testing.T) {
	f0 := NewVec3(0.02, 0.02, 0.02)
	prev := SchlickFresnel(f0, 1.0).X
	for cos := 0.9; cos >= 0; cos -= 0.1 {
		cur := SchlickFresnel(f0, cos).X
		assert.GreaterOrEqual(t, cur, prev-1e-9)
		prev = cur
	}
}

func TestSchlickFresnelClampsCosTheta(t *testing.T) {
	f0 := NewVec3(0.04, 0.04, 0.04)
	assert.Equal(t, SchlickFresnel(f0, 0), SchlickFresnel(f0, -0.5))
	assert.Equal(t, SchlickFresnel(f0, 1), SchlickFresnel(f0, 1.5))
}

func TestRandomFloat01Range(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		v := RandomFloat01(rng)
		assert.True(t, v >= 0 && v < 1)
	}
}

func TestRandomUnitVectorUniformity(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		sum = sum.Add(RandomUnitVector(rng))
	}
	mean := sum.Multiply(1.0 / n)
	assert.Less(t, mean.Length(), 0.05)
}
