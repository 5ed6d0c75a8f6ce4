// Package integrator implements the bounded-depth path integrator that
// turns a primary ray into a radiance estimate.
package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/cubemap"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config bundles the integrator's configurable magic numbers: these were
// unexplained constants in the original renderer and are kept
// configurable here rather than hardcoded.
type Config struct {
	MaxDepth          int     // maximum bounce count, default 5
	LightSampleCount  int     // shadow rays per bounce for next-event estimation, default 5
	LightSampleSpread float64 // jitter magnitude added to the light-direction guess, default 0.5
	LightSampleWeight float64 // contribution weight of the direct-light estimate, default 0.05
	ShadowRayEpsilon  float64 // offset along shadow/bounce ray direction to avoid self-intersection, default 0.001
}

// DefaultConfig returns the magic-number defaults this integrator was
// originally tuned with.
func DefaultConfig() Config {
	return Config{
		MaxDepth:          5,
		LightSampleCount:  5,
		LightSampleSpread: 0.5,
		LightSampleWeight: 0.05,
		ShadowRayEpsilon:  0.001,
	}
}

// RayProvider is the camera collaborator interface the integrator
// consumes: it generates a primary ray for normalized screen coordinates.
// renderer.CameraSnapshot satisfies this structurally.
type RayProvider interface {
	RayThroughScreen(u, v, aspect float64) core.Ray
}

const rayEpsilonMin = 1e-4
const infinity = 1e38

// SamplePixel traces a single path from the camera through (u,v) and
// returns a clamped-to-[0,1] radiance estimate: BRDF-ish specular/diffuse
// bouncing mixed with a one-bounce explicit light sample at every bounce.
func SamplePixel(sc *scene.Scene, cm cubemap.Cubemap, cam RayProvider, u, v, aspect float64, cfg Config, rng *rand.Rand) core.Vec3 {
	ray := cam.RayThroughScreen(u, v, aspect)

	contrib := core.NewVec3(1, 1, 1)
	result := core.Vec3{}

	for depth := 0; depth < cfg.MaxDepth; depth++ {
		hit, ok := sc.Intersect(ray, rayEpsilonMin, infinity)
		if !ok {
			result = result.Add(contrib.MultiplyVec(cm.Sample(ray.Direction)))
			break
		}

		obj := sc.At(hit.Object)
		mat := obj.Material

		f0 := mat.F0()
		cosNV := clamp01(hit.Normal.Dot(ray.Direction.Negate()))
		fresnel := core.SchlickFresnel(f0, cosNV)

		sampledLight := sampleDirectLight(sc, cm, hit, cfg, rng)

		result = result.Add(mat.Emission().MultiplyVec(contrib))

		randDir := core.RandomHemisphereDirection(hit.Normal, rng)

		var direction core.Vec3
		if mat.Metallic > 0.001 || rng.Float64() <= fresnel.Average() {
			mirror := ray.Direction.Reflect(hit.Normal)
			direction = core.Lerp(mirror, randDir, mat.Roughness).Normalize()
		} else {
			direction = randDir
			contrib = contrib.MultiplyVec(mat.Albedo.Multiply(1 - mat.Metallic))
		}

		if !sampledLight.NearZero() {
			result = result.Add(sampledLight.MultiplyVec(contrib).Multiply(cfg.LightSampleWeight))
			contrib = contrib.Multiply(1 - cfg.LightSampleWeight)
		}

		ray = core.NewRay(hit.Point.Add(direction.Multiply(cfg.ShadowRayEpsilon)), direction)
	}

	return result.Clamp01()
}

// sampleDirectLight implements the one-bounce next-event estimate: it
// picks the first emissive object other than the one just hit, in scan
// order, and stops — a known limitation reproduced faithfully rather
// than fixed.
func sampleDirectLight(sc *scene.Scene, cm cubemap.Cubemap, hit scene.HitInfo, cfg Config, rng *rand.Rand) core.Vec3 {
	lightIdx := -1
	for _, idx := range sc.EmissiveIndices() {
		if idx == hit.Object {
			continue
		}
		lightIdx = idx
		break
	}
	if lightIdx < 0 {
		return core.Vec3{}
	}

	toLight := sc.OriginOf(lightIdx).Subtract(hit.Point)

	accumulated := core.Vec3{}
	for i := 0; i < cfg.LightSampleCount; i++ {
		jitter := core.RandomInUnitSphere(rng)
		if jitter.Dot(hit.Normal) < 0 {
			jitter = jitter.Negate()
		}
		direction := toLight.Add(jitter.Multiply(cfg.LightSampleSpread)).Normalize()

		shadowRay := core.NewRay(hit.Point.Add(direction.Multiply(cfg.ShadowRayEpsilon)), direction)
		shadowHit, ok := sc.Intersect(shadowRay, rayEpsilonMin, infinity)
		if !ok {
			continue
		}

		shadowMat := sc.At(shadowHit.Object).Material
		accumulated = accumulated.Add(shadowMat.Emission())
	}

	return accumulated.Multiply(1.0 / float64(cfg.LightSampleCount))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
