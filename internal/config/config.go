// Package config loads the process-launch configuration for cmd/pathtracer:
// window size, worker count, skybox directory, and the initial camera
// position. Scene authoring is out of scope; this is only the configuration
// of which assets to load and how to size the window.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Config is the top-level YAML document shape for a pathtracer run.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Skybox  string       `yaml:"skybox"`
	Workers int          `yaml:"workers"`
	Camera  CameraConfig `yaml:"camera"`
	Render  RenderConfig `yaml:"render"`
}

// WindowConfig sizes the display collaborator's window.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
}

// CameraConfig is the free-fly camera's initial pose. Only Position is
// applied to the camera (via InitialPosition); YawDeg and PitchDeg are
// parsed but not used, so the camera always starts looking down -Z.
type CameraConfig struct {
	Position [3]float64 `yaml:"position"`
	YawDeg   float64    `yaml:"yaw_deg"`
	PitchDeg float64    `yaml:"pitch_deg"`
}

// RenderConfig exposes the integrator's configurable magic numbers so a
// config file can override the defaults without a rebuild.
type RenderConfig struct {
	MaxDepth          int     `yaml:"max_depth"`
	LightSampleCount  int     `yaml:"light_sample_count"`
	LightSampleSpread float64 `yaml:"light_sample_spread"`
	LightSampleWeight float64 `yaml:"light_sample_weight"`
	ShadowRayEpsilon  float64 `yaml:"shadow_ray_epsilon"`
}

// Default returns the baseline configuration: an 800x600 window at native
// scale, all CPU cores, and the integrator's tuned defaults.
func Default() Config {
	return Config{
		Window:  WindowConfig{Width: 800, Height: 600, Scale: 1},
		Skybox:  "assets/skybox",
		Workers: 0,
		Camera:  CameraConfig{Position: [3]float64{0, 0, 0}},
		Render:  fromIntegratorConfig(integrator.DefaultConfig()),
	}
}

// Load reads and parses a YAML configuration file, falling back to
// Default() for any zero-valued field the file leaves unset. A missing
// path is not an error: callers that pass "" get Default() unmodified.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}

	return cfg, nil
}

// IntegratorConfig converts the YAML render section into integrator.Config.
func (c Config) IntegratorConfig() integrator.Config {
	return integrator.Config{
		MaxDepth:          c.Render.MaxDepth,
		LightSampleCount:  c.Render.LightSampleCount,
		LightSampleSpread: c.Render.LightSampleSpread,
		LightSampleWeight: c.Render.LightSampleWeight,
		ShadowRayEpsilon:  c.Render.ShadowRayEpsilon,
	}
}

// InitialPosition converts the configured camera position to a core.Vec3.
func (c CameraConfig) InitialPosition() core.Vec3 {
	return core.NewVec3(c.Position[0], c.Position[1], c.Position[2])
}

func fromIntegratorConfig(ic integrator.Config) RenderConfig {
	return RenderConfig{
		MaxDepth:          ic.MaxDepth,
		LightSampleCount:  ic.LightSampleCount,
		LightSampleSpread: ic.LightSampleSpread,
		LightSampleWeight: ic.LightSampleWeight,
		ShadowRayEpsilon:  ic.ShadowRayEpsilon,
	}
}
