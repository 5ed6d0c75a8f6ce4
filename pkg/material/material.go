// Package material defines the surface parameterization used by every
// object in the scene.
package material

import "github.com/df07/go-pathtracer/pkg/core"

// Material describes a metallic-workflow surface, grounded on Filament's
// parameterization (see doc.go for the glossary of how Reflectance and
// Metallic combine into F0).
type Material struct {
	Albedo         core.Vec3 // Diffuse reflectance color, each component in [0,1]
	Roughness      float64   // [0,1]; 0 = mirror, 1 = fully diffuse-like specular lobe
	Reflectance    float64   // [0,1]; dielectric F0 scaling
	Metallic       float64   // [0,1]; interpolates dielectric F0 -> albedo F0
	EmissionPower  float64   // >= 0
	EmissionColor  core.Vec3 // [0,1]^3
}

// F0 returns the material's Fresnel reflectance at normal incidence:
// mix(0.16*reflectance^2, albedo, metallic).
func (m Material) F0() core.Vec3 {
	dielectric := 0.16 * m.Reflectance * m.Reflectance
	return core.Lerp(core.NewVec3(dielectric, dielectric, dielectric), m.Albedo, m.Metallic)
}

// Emission returns the material's emitted radiance, emission_color scaled
// by emission_power.
func (m Material) Emission() core.Vec3 {
	return m.EmissionColor.Multiply(m.EmissionPower)
}

// IsEmissive reports whether this material emits any light.
func (m Material) IsEmissive() bool {
	return m.EmissionPower > 0 && !m.EmissionColor.NearZero()
}
