package renderer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCameraSnapshotLooksDownNegativeZInitially(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 0))
	snap := cam.Snapshot()

	assert.InDelta(t, 0.0, snap.forward.X, 1e-9)
	assert.InDelta(t, 0.0, snap.forward.Y, 1e-9)
	assert.InDelta(t, -1.0, snap.forward.Z, 1e-9)
}

func TestCameraMoveTranslatesAlongForward(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 0))
	cam.Move(core.NewVec3(0, 0, 1), 2.0)

	snap := cam.Snapshot()
	assert.InDelta(t, -2.0, snap.origin.Z, 1e-9)
}

func TestCameraRotateClampsPitch(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 0))
	cam.Rotate(0, math.Pi)

	snap := cam.Snapshot()
	limit := 89 * math.Pi / 180
	assert.LessOrEqual(t, snap.forward.Y, math.Sin(limit)+1e-9)
}

func TestRayThroughScreenCenterMatchesForward(t *testing.T) {
	cam := NewCamera(core.NewVec3(1, 2, 3))
	snap := cam.Snapshot()

	ray := snap.RayThroughScreen(0.5, 0.5, 1.0)

	assert.InDelta(t, snap.forward.X, ray.Direction.X, 1e-9)
	assert.InDelta(t, snap.forward.Y, ray.Direction.Y, 1e-9)
	assert.InDelta(t, snap.forward.Z, ray.Direction.Z, 1e-9)
}

func TestRayThroughScreenIsUnitLength(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 0))
	snap := cam.Snapshot()

	ray := snap.RayThroughScreen(0.1, 0.9, 1.77)
	assert.InDelta(t, 1.0, ray.Direction.Length(), 1e-9)
}
