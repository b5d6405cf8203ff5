// Package shadow provides the projection matrices that flatten scene
// geometry onto the ground to fake cast shadows.
package shadow

import (
	"github.com/Faultbox/snowmen/pkg/math"
)

// Light is the directional light the scene's shadows are cast from: high
// overhead and slightly behind the origin, so shadows fall towards -Z.
var Light = math.Vec4{0, 1, 1.1, 0}

// PondPlane is the ice surface, y = 0.
var PondPlane = math.Vec4{0, 1, 0, 0}

// ShorePlane is the snow field, y = shoreHeight.
func ShorePlane(shoreHeight float32) math.Vec4 {
	return math.Vec4{0, 1, 0, -shoreHeight}
}

// Projector holds the shadow matrices for the two receiving surfaces.
type Projector struct {
	Pond  math.Mat4 // snowmen skate on the ice
	Shore math.Mat4 // trees stand on the snow field
}

// NewProjector builds the projections for light onto the pond and shore.
func NewProjector(light math.Vec4, shoreHeight float32) Projector {
	return Projector{
		Pond:  math.PlanarShadow(light, PondPlane),
		Shore: math.PlanarShadow(light, ShorePlane(shoreHeight)),
	}
}
