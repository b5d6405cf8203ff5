package model

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// Hat dimensions in head radii.
const (
	hatBrimRadius    = 1.0
	hatBrimBottomY   = -0.05
	hatBrimTopY      = 0.05
	hatStemTopRadius = 0.6
	hatStemLowRadius = 0.5
	hatStemBottomY   = 0.05
	hatStemTopY      = 1.2
	hatOutlineWidth  = 0.05
	DefaultHatSlices = 16
)

// Hat range names.
const (
	HatBrimBottom = "brim_bottom"
	HatBrimTop    = "brim_top"
	HatBrimSide   = "brim_side"
	HatStemTop    = "stem_top"
	HatStemSide   = "stem_side"
)

// HatRanges lists the hat ranges in draw order.
var HatRanges = []string{HatBrimBottom, HatBrimTop, HatBrimSide, HatStemTop, HatStemSide}

// BuildHat generates a top hat: a flat brim disc and a tapered stem, both
// with their own side strips. Four rings of slices vertices each; the brim
// bottom ring runs the other way round so its fan faces down.
func BuildHat(slices int) (*mesh.Buffer, error) {
	if slices < 3 {
		return nil, fmt.Errorf("model: hat needs at least 3 slices, got %d", slices)
	}

	b := &mesh.Buffer{
		Name:            "hat",
		Vertices:        make([]math.Vec3, 0, 4*slices),
		OutlineVertices: make([]math.Vec3, 0, 4*slices),
		Indices:         make([]uint32, 0, 7*slices+4),
	}

	ring := func(radius, y, outlineRadius, outlineY, xSign float64) uint32 {
		start := uint32(len(b.Vertices))
		for i := 0; i < slices; i++ {
			s, c := gomath.Sincos(math.Tau * float64(i) / float64(slices))
			b.Vertices = append(b.Vertices, math.Vec3{
				X: float32(xSign * s * radius), Y: float32(y), Z: float32(c * radius),
			})
			b.OutlineVertices = append(b.OutlineVertices, math.Vec3{
				X: float32(xSign * s * outlineRadius), Y: float32(outlineY), Z: float32(c * outlineRadius),
			})
		}
		return start
	}
	add := func(name string, prim mesh.Primitive, idx ...uint32) {
		b.Ranges = append(b.Ranges, mesh.Range{
			Name: name, Primitive: prim, Source: mesh.Elements,
			Offset: len(b.Indices), Count: len(idx),
		})
		b.Indices = append(b.Indices, idx...)
	}
	seq := func(start uint32) []uint32 {
		out := make([]uint32, slices)
		for i := range out {
			out[i] = start + uint32(i)
		}
		return out
	}

	n := uint32(slices)
	ow := hatOutlineWidth

	brimBottom := ring(hatBrimRadius, hatBrimBottomY, hatBrimRadius+ow, hatBrimBottomY-ow, -1)
	add(HatBrimBottom, mesh.TriangleFan, seq(brimBottom)...)

	brimTop := ring(hatBrimRadius, hatBrimTopY, hatBrimRadius+ow, hatBrimTopY+ow, 1)
	add(HatBrimTop, mesh.TriangleFan, seq(brimTop)...)

	// The bottom ring is mirrored in X, so walking it backwards lines it up
	// with the top ring.
	side := make([]uint32, 0, 2*slices+2)
	for i := uint32(0); i < n; i++ {
		side = append(side, brimTop+i, brimBottom+n-1-i)
	}
	side = append(side, brimTop, brimBottom+n-1)
	add(HatBrimSide, mesh.TriangleStrip, side...)

	stemTop := ring(hatStemTopRadius, hatStemTopY, hatStemTopRadius+ow, hatStemTopY+ow, 1)
	add(HatStemTop, mesh.TriangleFan, seq(stemTop)...)

	stemBottom := ring(hatStemLowRadius, hatStemBottomY, hatStemLowRadius+ow, hatStemBottomY+ow, 1)
	stem := make([]uint32, 0, 2*slices+2)
	for i := uint32(0); i < n; i++ {
		stem = append(stem, stemTop+i, stemBottom+i)
	}
	stem = append(stem, stemTop, stemBottom)
	add(HatStemSide, mesh.TriangleStrip, stem...)

	return b, nil
}
