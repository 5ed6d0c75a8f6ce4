package renderer

import (
	"math"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraSnapshot is an immutable view-ray generator copied out of a Camera
// at the start of a worker pass, so a whole render pass can read it
// without synchronization even while input callbacks are concurrently
// mutating the live Camera.
type CameraSnapshot struct {
	origin     core.Vec3
	forward    core.Vec3
	right      core.Vec3
	up         core.Vec3
	viewHeight float64 // viewport height at unit distance, 2*tan(vFov/2)
}

// RayThroughScreen returns a ray from the camera's eye through normalized
// screen coordinates (u,v) in [0,1]^2, stretching the viewport
// horizontally by aspect so the image isn't distorted for non-square
// frames.
func (c CameraSnapshot) RayThroughScreen(u, v, aspect float64) core.Ray {
	horizontal := c.right.Multiply(c.viewHeight * aspect)
	vertical := c.up.Multiply(c.viewHeight)
	lowerLeftCorner := Combine3(c.origin.Add(c.forward), horizontal, -0.5, vertical, -0.5)

	direction := Combine3(lowerLeftCorner, horizontal, u, vertical, v).Subtract(c.origin)
	return core.NewRay(c.origin, direction.Normalize())
}

// Combine3 is a small helper for base + a*alpha + b*beta used by the
// camera's screen-to-world mapping.
func Combine3(base, a core.Vec3, alpha float64, b core.Vec3, beta float64) core.Vec3 {
	return base.Add(a.Multiply(alpha)).Add(b.Multiply(beta))
}

// Camera is the free-fly camera collaborator. The rendering core calls
// only Snapshot/RayThroughScreen during rendering; Move and Rotate
// are invoked by the input collaborator. They do not invalidate anything
// themselves: the input collaborator must also call Invalidate on
// whatever shared context owns sampling (see renderer.Context.Invalidate).
type Camera struct {
	mu sync.RWMutex

	position core.Vec3
	yaw      float64 // radians, around +Y
	pitch    float64 // radians, clamped to avoid gimbal flip

	vFov float64 // vertical field of view, radians
}

// NewCamera creates a free-fly camera at the given position looking down
// -Z, with a 45-degree vertical field of view.
func NewCamera(position core.Vec3) *Camera {
	return &Camera{
		position: position,
		vFov:     45 * math.Pi / 180,
	}
}

// basis returns the camera's forward/right/up unit vectors for its current
// yaw and pitch.
func (c *Camera) basis() (forward, right, up core.Vec3) {
	cosPitch, sinPitch := math.Cos(c.pitch), math.Sin(c.pitch)
	cosYaw, sinYaw := math.Cos(c.yaw), math.Sin(c.yaw)

	forward = core.NewVec3(sinYaw*cosPitch, sinPitch, -cosYaw*cosPitch).Normalize()
	right = core.NewVec3(cosYaw, 0, sinYaw).Normalize()
	up = core.Vec3{
		X: right.Y*forward.Z - right.Z*forward.Y,
		Y: right.Z*forward.X - right.X*forward.Z,
		Z: right.X*forward.Y - right.Y*forward.X,
	}
	return forward, right, up
}

// Snapshot copies the camera's current view into an immutable
// CameraSnapshot, safe to read from any number of goroutines without
// synchronization.
func (c *Camera) Snapshot() CameraSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	forward, right, up := c.basis()

	return CameraSnapshot{
		origin:     c.position,
		forward:    forward,
		right:      right,
		up:         up,
		viewHeight: 2 * math.Tan(c.vFov/2),
	}
}

// Move translates the camera along a direction vector (in its own
// local +X/+Y/+Z basis) at the given speed.
func (c *Camera) Move(direction core.Vec3, speed float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	forward, right, up := c.basis()
	delta := core.Combine(right, direction.X, up, direction.Y)
	delta = delta.Add(forward.Multiply(direction.Z))
	c.position = c.position.Add(delta.Multiply(speed))
}

// Rotate adjusts yaw and pitch by dx, dy radians, clamping pitch to just
// inside +/-90 degrees to avoid the basis degenerating.
func (c *Camera) Rotate(dx, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.yaw += dx
	c.pitch += dy

	const limit = 89 * math.Pi / 180
	if c.pitch > limit {
		c.pitch = limit
	}
	if c.pitch < -limit {
		c.pitch = -limit
	}
}
