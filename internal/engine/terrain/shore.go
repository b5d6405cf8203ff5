package terrain

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// BuildShore generates the shore as one triangle strip.
//
// For each spoke between neighbouring outline vertices p1 and p2 the strip
// climbs Steps-1 rings up the slope, alternating p1 and p2 sides, then jumps
// to the flat ring at FlatRadius. The first ring emits its p1 vertex twice,
// which keeps the strip's winding consistent between spokes.
func BuildShore(boundary []math.Vec3, p ShoreParams) (*mesh.Buffer, error) {
	n := len(boundary)
	if n < 3 {
		return nil, ErrBoundary
	}
	if p.Steps < 3 {
		return nil, fmt.Errorf("terrain: shore needs at least 3 steps, got %d", p.Steps)
	}

	perSpoke := 2 * (p.Steps + 1)
	verts := make([]math.Vec3, 0, n*perSpoke)
	tex := make([]math.Vec2, 0, n*perSpoke)

	emit := func(pos math.Vec3, u, v float64) {
		verts = append(verts, pos)
		tex = append(tex, math.Vec2{X: float32(u), Y: float32(v)})
	}

	slopeRings := float64(p.Steps - 2)
	for s := 0; s < n; s++ {
		p1 := boundary[s]
		p2 := boundary[(s+1)%n]
		dir1 := p1.Horizontal().MustNormalize()
		dir2 := p2.Horizontal().MustNormalize()
		u1 := 2 * p.TexRepeat * float64(s) / float64(n)
		u2 := 2 * p.TexRepeat * float64(s+1) / float64(n)

		for c := 0; c < p.Steps-1; c++ {
			run := float64(c) / float64(p.Steps) * p.SlopeRadius
			y := float32(p.Height * gomath.Pow(float64(c)*p.SlopeRadius/float64(p.Steps), p.Curve))
			v := 1 - p.TexPortion*gomath.Pow(float64(c)/slopeRings, p.Curve)

			a := p1.Add(dir1.Scale(float32(run)))
			a.Y = y
			b := p2.Add(dir2.Scale(float32(run)))
			b.Y = y

			emit(a, u1, v)
			if c == 0 {
				emit(a, u1, v)
			}
			emit(b, u2, v)
		}

		// Outermost ring on the flat snow field.
		far1 := dir1.Scale(float32(p.FlatRadius))
		far1.Y = float32(p.Height)
		far2 := dir2.Scale(float32(p.FlatRadius))
		far2.Y = float32(p.Height)
		emit(far1, u1, 0.01)
		emit(far2, u2, 0.01)
		emit(far2, u2, 0.01)
	}

	return &mesh.Buffer{
		Name:      "shore",
		Vertices:  verts,
		TexCoords: tex,
		Ranges: []mesh.Range{
			{Name: "surface", Primitive: mesh.TriangleStrip, Source: mesh.Arrays, Offset: 0, Count: len(verts)},
		},
	}, nil
}
