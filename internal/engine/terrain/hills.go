package terrain

import (
	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// BuildHills generates the horizon wall as a closed triangle strip of
// bottom/top vertex pairs, one pair per outline direction plus a closing
// pair. The V coordinate is inset so mirrored-repeat sampling never bleeds
// across the texture edge.
func BuildHills(boundary []math.Vec3, p HillsParams) (*mesh.Buffer, error) {
	n := len(boundary)
	if n < 3 {
		return nil, ErrBoundary
	}

	verts := make([]math.Vec3, 0, 2*(n+1))
	tex := make([]math.Vec2, 0, 2*(n+1))

	for i := 0; i <= n; i++ {
		dir := boundary[i%n].Horizontal().MustNormalize()
		pos := dir.Scale(float32(p.EdgeRadius))
		u := float32(float64(i) * 2 * p.TexRepeat / float64(n))

		bottom, top := pos, pos
		bottom.Y = float32(p.BaseHeight)
		top.Y = float32(p.Height)

		verts = append(verts, bottom, top)
		tex = append(tex, math.Vec2{X: u, Y: 0.002}, math.Vec2{X: u, Y: 0.998})
	}

	return &mesh.Buffer{
		Name:      "hills",
		Vertices:  verts,
		TexCoords: tex,
		Ranges: []mesh.Range{
			{Name: "wall", Primitive: mesh.TriangleStrip, Source: mesh.Arrays, Offset: 0, Count: len(verts)},
		},
	}, nil
}
