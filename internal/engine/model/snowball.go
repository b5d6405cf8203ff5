package model

import (
	"fmt"

	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// DefaultSnowballDepth gives the lumpy look; deeper spheres look too smooth.
const DefaultSnowballDepth = 3

// Tetrahedron seed corners. The texture is a cross-shaped unfold: the face
// triangle sits in the middle and the other three fold out to the edges.
var (
	snowballSeeds = [4]math.Vec3{
		{X: 0, Y: 1, Z: 0},
		{X: 0.816497, Y: -0.333333, Z: 0.471405},
		{X: 0, Y: -0.333333, Z: -0.942809},
		{X: -0.816497, Y: -0.333333, Z: 0.471405},
	}

	snowballTexSeeds = [9]math.Vec2{
		{X: 0.5, Y: 0.5},
		{X: texB, Y: 1}, {X: texA, Y: 1},
		{X: 1, Y: texA}, {X: 1, Y: texB},
		{X: 0, Y: texB}, {X: 0, Y: texA},
		{X: texA, Y: 0}, {X: texB, Y: 0},
	}
)

const (
	texA = 0.211325
	texB = 0.788675
)

// SnowballVertexCount returns the number of vertices a sphere of the given
// depth has: four seed triangles, each split into 4^depth.
func SnowballVertexCount(depth int) int {
	n := 3 * 4
	for i := 0; i < depth; i++ {
		n *= 4
	}
	return n
}

// BuildSnowball returns a unit sphere as an unindexed triangle list.
func BuildSnowball(depth int) (*mesh.Buffer, error) {
	if depth < 0 {
		return nil, fmt.Errorf("model: snowball depth %d is negative", depth)
	}

	v, t := snowballSeeds, snowballTexSeeds
	seeds := [4][6]int{
		{0, 1, 2, 0, 1, 2}, // face
		{3, 2, 1, 0, 3, 4}, // bottom
		{0, 2, 3, 0, 5, 6}, // left
		{0, 3, 1, 0, 7, 8}, // right
	}

	count := SnowballVertexCount(depth)
	verts := make([]math.Vec3, 0, count)
	tex := make([]math.Vec2, 0, count)
	for _, s := range seeds {
		sv, st := subdivide(v[s[0]], v[s[1]], v[s[2]], t[s[3]], t[s[4]], t[s[5]], depth)
		verts = append(verts, sv...)
		tex = append(tex, st...)
	}

	return &mesh.Buffer{
		Name:      "snowball",
		Vertices:  verts,
		TexCoords: tex,
		Ranges: []mesh.Range{
			{Name: "surface", Primitive: mesh.Triangles, Source: mesh.Arrays, Offset: 0, Count: count},
		},
	}, nil
}

// subdivide splits one spherical triangle depth times. Edge midpoints are
// pushed back onto the unit sphere; texture midpoints stay flat.
func subdivide(va, vb, vc math.Vec3, ta, tb, tc math.Vec2, depth int) ([]math.Vec3, []math.Vec2) {
	if depth == 0 {
		return []math.Vec3{va, vb, vc}, []math.Vec2{ta, tb, tc}
	}

	v1 := math.Midpoint(va, vb).MustNormalize()
	v2 := math.Midpoint(va, vc).MustNormalize()
	v3 := math.Midpoint(vc, vb).MustNormalize()
	t1 := ta.Lerp(tb, 0.5)
	t2 := ta.Lerp(tc, 0.5)
	t3 := tc.Lerp(tb, 0.5)

	var verts []math.Vec3
	var tex []math.Vec2
	for _, part := range [4]struct {
		a, b, c    math.Vec3
		ta, tb, tc math.Vec2
	}{
		{va, v1, v2, ta, t1, t2},
		{vc, v2, v3, tc, t2, t3},
		{vb, v3, v1, tb, t3, t1},
		{v1, v3, v2, t1, t3, t2},
	} {
		pv, pt := subdivide(part.a, part.b, part.c, part.ta, part.tb, part.tc, depth-1)
		verts = append(verts, pv...)
		tex = append(tex, pt...)
	}
	return verts, tex
}
