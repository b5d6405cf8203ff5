// Package terrain builds the snow banks around the pond: a sloped shore that
// runs out to the edge of the world and a ring of hills on the horizon.
package terrain

import "errors"

// ErrBoundary is returned when the pond outline is too short to build from.
var ErrBoundary = errors.New("terrain: pond boundary needs at least 3 vertices")

// Scene-wide ground constants.
const (
	UniverseEdgeRadius = 150 // distance to the hills
	ShoreHeight        = 1   // height of the flat snow field
	HillsHeight        = 20
)

// ShoreParams shape the bank rising from the ice to the snow field.
type ShoreParams struct {
	Steps       int     // concentric rings per spoke, the last one at the world edge
	SlopeRadius float64 // horizontal run of the slope
	FlatRadius  float64 // distance of the outermost ring from the origin
	Height      float64 // height of the snow field
	TexRepeat   float64 // texture repeats around the ring, doubled by mirroring
	TexPortion  float64 // share of the texture's V range the slope consumes
	Curve       float64 // exponent of the slope profile
}

// DefaultShoreParams returns the shore used by the scene.
func DefaultShoreParams() ShoreParams {
	return ShoreParams{
		Steps:       7,
		SlopeRadius: 2,
		FlatRadius:  UniverseEdgeRadius,
		Height:      ShoreHeight,
		TexRepeat:   3,
		TexPortion:  0.25,
		Curve:       1.0 / 3.0,
	}
}

// HillsParams shape the wall of hills at the world edge.
type HillsParams struct {
	EdgeRadius float64
	BaseHeight float64
	Height     float64
	TexRepeat  float64
}

// DefaultHillsParams returns the hills used by the scene.
func DefaultHillsParams() HillsParams {
	return HillsParams{
		EdgeRadius: UniverseEdgeRadius,
		BaseHeight: ShoreHeight,
		Height:     HillsHeight,
		TexRepeat:  3,
	}
}
