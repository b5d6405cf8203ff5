package model

import (
	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// Skate range names.
const (
	SkateRight = "right"
	SkateLeft  = "left"
	SkateEdge  = "edge"
)

// SkateRanges lists the skate ranges in draw order.
var SkateRanges = []string{SkateRight, SkateLeft, SkateEdge}

// skateProfile is the blade and curled toe traced in (Y, Z), in units of
// the skate's half width.
var skateProfile = [13][2]float32{
	{0, -15}, {5, -12}, {0, 13}, {5, 12}, {2, 18}, {6, 14}, {5, 20},
	{8, 15}, {8, 20}, {10, 14}, {10, 19}, {12, 12}, {12, 15},
}

var skateIndices = []uint32{
	25, 24, 23, 22, 21, 20, 19, 18, 17, 16, 15, 14, 13,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	0, 13, 1, 14, 3, 16, 5, 18, 7, 20, 9, 22, 11, 24, 12, 25, 10, 23, 8, 21, 6, 19, 4, 17, 2, 15, 0, 13,
}

// BuildSkate generates an ice skate blade: two flat profiles one unit
// either side of X = 0 joined by a strip around the edge. The scene draws it
// at 1/30 scale.
func BuildSkate() *mesh.Buffer {
	verts := make([]math.Vec3, 0, 2*len(skateProfile))
	for _, side := range []float32{1, -1} {
		for _, p := range skateProfile {
			verts = append(verts, math.Vec3{X: side, Y: p[0], Z: p[1]})
		}
	}

	return &mesh.Buffer{
		Name:     "skate",
		Vertices: verts,
		Indices:  append([]uint32(nil), skateIndices...),
		Ranges: []mesh.Range{
			{Name: SkateRight, Primitive: mesh.TriangleStrip, Source: mesh.Elements, Offset: 0, Count: 13},
			{Name: SkateLeft, Primitive: mesh.TriangleStrip, Source: mesh.Elements, Offset: 13, Count: 13},
			{Name: SkateEdge, Primitive: mesh.TriangleStrip, Source: mesh.Elements, Offset: 26, Count: 28},
		},
	}
}
