// Package water builds the frozen pond at the center of the scene.
package water

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// ErrDegeneratePond is returned when the parameters cannot produce a simple
// closed outline.
var ErrDegeneratePond = errors.New("degenerate pond")

// DefaultWeights shape the shoreline. Term j adds a lobe with 3·j bumps
// around the ring; the values were tuned by eye.
var DefaultWeights = []float64{12, 2, 0, 3, 4, 5, 0, 0, 0, 0, 0}

// DefaultModerator scales the summed radius down to scene units.
const DefaultModerator = 0.7

// DefaultResolution is the number of vertices on the pond outline.
const DefaultResolution = 160

// PondParams describe the polar outline of the pond.
type PondParams struct {
	Weights    []float64
	Moderator  float64
	Resolution int
}

// DefaultPondParams returns the shape used by the scene.
func DefaultPondParams() PondParams {
	return PondParams{
		Weights:    DefaultWeights,
		Moderator:  DefaultModerator,
		Resolution: DefaultResolution,
	}
}

// Radius returns the unmoderated outline radius at ring vertex i.
//
//	r(i) = Σ w[j] · (2 + sin(3·i·j·τ/N))
func (p PondParams) Radius(i int) float64 {
	var r float64
	n := float64(p.Resolution)
	for j, w := range p.Weights {
		r += w * (2 + gomath.Sin(3*float64(i)*float64(j)*math.Tau/n))
	}
	return r
}

// Pond is the ice surface: a triangle fan around the origin.
//
// Vertex 0 is the center, vertices 1..N trace the outline and vertex N+1
// repeats vertex 1 to close the fan.
type Pond struct {
	Mesh   *mesh.Buffer
	Params PondParams
}

// Boundary returns the N outline vertices, without the center or the
// closing duplicate. The slice aliases the mesh and must not be modified.
func (p *Pond) Boundary() []math.Vec3 {
	return p.Mesh.Vertices[1 : 1+p.Params.Resolution]
}

// BuildPond generates the pond fan.
func BuildPond(p PondParams) (*Pond, error) {
	n := p.Resolution
	if n < 3 {
		return nil, fmt.Errorf("%w: resolution %d, need at least 3", ErrDegeneratePond, n)
	}
	if len(p.Weights) == 0 {
		return nil, fmt.Errorf("%w: no weights", ErrDegeneratePond)
	}

	verts := make([]math.Vec3, n+2)
	for i := 0; i < n; i++ {
		r := p.Radius(i)
		if r <= 0 {
			return nil, fmt.Errorf("%w: radius %g at vertex %d", ErrDegeneratePond, r, i)
		}
		verts[i+1] = math.Polar(p.Moderator*r, float64(i)*math.Tau/float64(n))
	}
	verts[n+1] = verts[1]

	// Texture space spans the outline's bounding box.
	minX, maxX := float64(verts[1].X), float64(verts[1].X)
	minZ, maxZ := float64(verts[1].Z), float64(verts[1].Z)
	for _, v := range verts[2 : n+1] {
		minX, maxX = gomath.Min(minX, float64(v.X)), gomath.Max(maxX, float64(v.X))
		minZ, maxZ = gomath.Min(minZ, float64(v.Z)), gomath.Max(maxZ, float64(v.Z))
	}
	if maxX == minX || maxZ == minZ {
		return nil, fmt.Errorf("%w: outline has no area", ErrDegeneratePond)
	}

	tex := make([]math.Vec2, n+2)
	for i, v := range verts {
		tex[i] = math.Vec2{
			X: float32(math.NormalizeRange(float64(v.X), minX, maxX)),
			Y: float32(math.NormalizeRange(float64(v.Z), minZ, maxZ)),
		}
	}

	return &Pond{
		Mesh: &mesh.Buffer{
			Name:      "pond",
			Vertices:  verts,
			TexCoords: tex,
			Ranges: []mesh.Range{
				{Name: "surface", Primitive: mesh.TriangleFan, Source: mesh.Arrays, Offset: 0, Count: n + 2},
			},
		},
		Params: p,
	}, nil
}
