package entity

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/snowmen/pkg/math"
)

// Snowman path constants.
const (
	TravelRadius    = 10.0 // mean distance from the pond center
	TravelVariation = 2.0  // in and out swing of the minor loops
	MinorLoopsMin   = 3
	MinorLoopsRange = 2
	TiltFactor      = -10.0 // degrees of lean at the widest swing
	HeadingSwing    = 30.0  // degrees the snowman turns into each loop
	PhaseStep       = 0.007 // radians per frame at speed 1
)

// HatColors are the named hat colors handed out in order.
var HatColors = []math.Vec4{
	{0.65, 0.16, 0.16, 1}, // brown
	{1, 0.97, 0.86, 1},    // cornsilk
	{0.6, 0.2, 0.8, 1},    // dark orchid
	{0.87, 0.63, 0.87, 1}, // plum
	{0.86, 0.08, 0.24, 1}, // crimson
	{0.98, 0.5, 0.54, 1},  // salmon
	{0.96, 0.64, 0.38, 1}, // sandy brown
	{0.5, 0.5, 0.5, 1},    // gray
	{1, 0.35, 0, 1},       // orange
}

// Pose is the per-frame state derived from the global phase.
type Pose struct {
	Position   math.Vec2 // on the ground plane: X is world X, Y is world Z
	Heading    float64   // degrees about +Y
	Tilt       float64   // degrees about the snowman's local Z
	MinorPhase float64
}

// Snowman is one skater. Everything except Pose is fixed at creation.
type Snowman struct {
	HatColor         math.Vec4
	BaseRotation     float64 // degrees; spins the bottom ball's texture
	PhaseOffset      float64 // position around the big circle
	MinorPhaseOffset float64
	MinorLoopCount   int

	Pose Pose
}

// NewSnowmen spaces count snowmen evenly around the pond with randomized
// loop patterns.
func NewSnowmen(count int, rng Rand) ([]Snowman, error) {
	if count < 1 {
		return nil, fmt.Errorf("entity: need at least one snowman, got %d", count)
	}
	out := make([]Snowman, count)
	for i := range out {
		out[i] = Snowman{
			HatColor:         HatColors[i%len(HatColors)],
			PhaseOffset:      math.Tau * float64(i) / float64(count),
			MinorPhaseOffset: rng.Float64() * math.Tau,
			MinorLoopCount:   MinorLoopsMin + int(gomath.Floor(MinorLoopsRange*rng.Float64())),
			BaseRotation:     rng.Float64() * 360,
		}
		out[i].Update(0)
	}
	return out, nil
}

// Update sets the pose for the global phase. It depends only on phase and
// the fixed parameters, never on earlier updates.
func (s *Snowman) Update(phase float64) {
	rho := phase + s.PhaseOffset
	minor := rho*float64(s.MinorLoopCount) + s.MinorPhaseOffset
	sinMinor, cosMinor := gomath.Sincos(minor)
	radius := TravelRadius + TravelVariation*sinMinor
	sinRho, cosRho := gomath.Sincos(rho)

	s.Pose = Pose{
		Position:   math.Vec2{X: float32(radius * sinRho), Y: float32(radius * cosRho)},
		Heading:    math.Rad2Deg(rho) + 90 - cosMinor*HeadingSwing,
		Tilt:       TiltFactor * sinMinor,
		MinorPhase: minor,
	}
}
