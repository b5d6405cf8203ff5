// Package camera provides the scene's fixed-path camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/snowmen/pkg/math"
)

// Default orbit parameters.
const (
	DefaultRadius   = 33
	DefaultHeight   = 7
	DefaultStep     = 0.001 // radians per frame at speed 1
	DefaultFOV      = 36    // degrees
	DefaultNear     = 10
	DefaultFar      = 200
	DefaultStartPhi = gomath.Pi / 2
)

// AutoOrbit circles the origin at a fixed height, always looking at the
// center of the pond. It is not driven by input.
type AutoOrbit struct {
	Phase  float64 // radians, kept in [0, τ]
	Step   float64
	Radius float32
	Height float32

	FOV  float32 // vertical, degrees
	Near float32
	Far  float32
}

// NewAutoOrbit creates the scene camera at its starting phase.
func NewAutoOrbit() *AutoOrbit {
	return &AutoOrbit{
		Phase:  DefaultStartPhi,
		Step:   DefaultStep,
		Radius: DefaultRadius,
		Height: DefaultHeight,
		FOV:    DefaultFOV,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// Advance moves the camera one frame along its orbit.
func (c *AutoOrbit) Advance(speed float64) {
	c.Phase = math.WrapPhase(c.Phase + c.Step*speed)
}

// Position returns the eye position for the current phase.
// X follows sin(-φ) so the camera travels clockwise seen from above.
func (c *AutoOrbit) Position() math.Vec3 {
	return math.Vec3{
		X: c.Radius * float32(gomath.Sin(-c.Phase)),
		Y: c.Height,
		Z: c.Radius * float32(gomath.Cos(c.Phase)),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *AutoOrbit) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), math.Vec3{}, math.Vec3{Y: 1})
}

// Projection returns the perspective matrix for a viewport aspect ratio.
func (c *AutoOrbit) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(float32(math.Deg2Rad(float64(c.FOV))), aspect, c.Near, c.Far)
}
