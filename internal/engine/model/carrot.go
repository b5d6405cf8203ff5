package model

import (
	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// Carrot range names.
const (
	CarrotBody = "body"
	CarrotTip  = "tip"
	CarrotBase = "base"
)

var carrotIndices = []uint32{
	8, 0, 9, 1, 10, 2, 11, 3, 12, 4, 13, 5, 14, 6, 15, 7, 8, 0,
	16, 8, 9, 10, 11, 12, 13, 14, 15, 8,
	7, 6, 5, 4, 3, 2, 1, 0,
}

// octagon returns eight points around the Z axis at depth z, starting at
// the top and turning counter-clockwise when viewed from +Z.
func octagon(radius, diagonal, z float32) []math.Vec3 {
	return []math.Vec3{
		{X: 0, Y: radius, Z: z},
		{X: -diagonal, Y: diagonal, Z: z},
		{X: -radius, Y: 0, Z: z},
		{X: -diagonal, Y: -diagonal, Z: z},
		{X: 0, Y: -radius, Z: z},
		{X: diagonal, Y: -diagonal, Z: z},
		{X: radius, Y: 0, Z: z},
		{X: diagonal, Y: diagonal, Z: z},
	}
}

// BuildCarrot generates the nose: a two-section octagonal cone pointing down
// +Z with a slightly drooping tip.
func BuildCarrot() *mesh.Buffer {
	verts := make([]math.Vec3, 0, 17)
	verts = append(verts, octagon(0.15, 0.11, 0)...)
	verts = append(verts, octagon(0.1, 0.07, 0.4)...)
	verts = append(verts, math.Vec3{X: 0, Y: -0.1, Z: 0.8})

	return &mesh.Buffer{
		Name:     "carrot",
		Vertices: verts,
		Indices:  append([]uint32(nil), carrotIndices...),
		Ranges: []mesh.Range{
			{Name: CarrotBody, Primitive: mesh.TriangleStrip, Source: mesh.Elements, Offset: 0, Count: 18},
			{Name: CarrotTip, Primitive: mesh.TriangleFan, Source: mesh.Elements, Offset: 18, Count: 10},
			{Name: CarrotBase, Primitive: mesh.TriangleFan, Source: mesh.Elements, Offset: 28, Count: 8},
		},
	}
}
