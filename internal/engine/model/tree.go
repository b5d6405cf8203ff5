package model

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// TreeParams shape the canonical tree. Instances scale it by their own
// height and skirt radius.
type TreeParams struct {
	Skirts         int // stacked cones of needles
	SkirtVertices  int // outline vertices per skirt
	TrunkSlices    int
	TrunkHeight    float64
	TrunkTopRadius float64
	TrunkLowRadius float64
}

// DefaultTreeParams returns the tree used by the scene. The tree texture has
// an ink outline painted for exactly DefaultTreeParams().SkirtVertices edges.
func DefaultTreeParams() TreeParams {
	return TreeParams{
		Skirts:         5,
		SkirtVertices:  16,
		TrunkSlices:    8,
		TrunkHeight:    0.3,
		TrunkTopRadius: 0.11,
		TrunkLowRadius: 0.15,
	}
}

// Skirt shape constants.
const (
	skirtCenterLift = 0.26 // how far a skirt's tip rises above its rim
	skirtRimWave    = 0.06 // odd rim vertices are lifted to give a ragged edge
	outlineTipLift  = 0.04
	outlineRimGrow  = 1.03
	outlineRimExtra = 0.05
	trunkOutlineXZ  = 1.3
	trunkOutlineY   = 1.1
)

// SkirtRangeName names the fan for skirt j, counted from the bottom.
func SkirtRangeName(j int) string {
	return fmt.Sprintf("skirt%d", j)
}

// BuildTree generates the tree mesh: one triangle fan per skirt followed by
// a trunk strip. Each skirt is rotated by a random amount so the rim
// notches do not line up. The outline buffer holds an inflated copy of
// every vertex.
func BuildTree(p TreeParams, rng Rand) (*mesh.Buffer, error) {
	if p.Skirts < 1 || p.SkirtVertices < 3 || p.TrunkSlices < 3 {
		return nil, fmt.Errorf("model: invalid tree params %+v", p)
	}

	fan := p.SkirtVertices + 2
	trunk := 2*p.TrunkSlices + 2
	total := p.Skirts*fan + trunk

	b := &mesh.Buffer{
		Name:            "tree",
		Vertices:        make([]math.Vec3, 0, total),
		TexCoords:       make([]math.Vec2, 0, total),
		OutlineVertices: make([]math.Vec3, 0, total),
	}
	emit := func(v math.Vec3, t math.Vec2, o math.Vec3) {
		b.Vertices = append(b.Vertices, v)
		b.TexCoords = append(b.TexCoords, t)
		b.OutlineVertices = append(b.OutlineVertices, o)
	}

	k := float64(p.SkirtVertices)
	for j := 0; j < p.Skirts; j++ {
		h := float64(j+1) / float64(p.Skirts)
		rot := rng.Float64() * math.Tau
		rim := 1 - float64(j)/float64(p.Skirts)
		outlineRim := rim*outlineRimGrow + outlineRimExtra

		tip := float32(h + skirtCenterLift*(2-h))
		emit(math.Vec3{Y: tip}, math.Vec2{X: 0.5, Y: 0.5}, math.Vec3{Y: tip + outlineTipLift})

		first := len(b.Vertices)
		for i := 0; i < p.SkirtVertices; i++ {
			a := float64(i)*math.Tau/k + rot
			sa, ca := gomath.Sincos(a)
			lift := float64(i&1) * skirtRimWave

			v := math.Vec3{X: float32(rim * sa), Y: float32(h + lift*(1.2-h)), Z: float32(rim * ca)}
			o := math.Vec3{X: float32(outlineRim * sa), Y: float32(h + lift*(1-h)), Z: float32(outlineRim * ca)}

			st, ct := gomath.Sincos(float64(i) * math.Tau / k)
			emit(v, math.Vec2{X: float32(0.5 + st/2), Y: float32(0.5 + ct/2)}, o)
		}
		emit(b.Vertices[first], b.TexCoords[first], b.OutlineVertices[first])

		b.Ranges = append(b.Ranges, mesh.Range{
			Name: SkirtRangeName(j), Primitive: mesh.TriangleFan, Source: mesh.Arrays,
			Offset: j * fan, Count: fan,
		})
	}

	trunkStart := len(b.Vertices)
	grow := math.Vec3{X: trunkOutlineXZ, Y: trunkOutlineY, Z: trunkOutlineXZ}
	for i := 0; i < p.TrunkSlices; i++ {
		s, c := gomath.Sincos(float64(i) * math.Tau / float64(p.TrunkSlices))
		u := float32(float64(i) / float64(p.TrunkSlices))

		low := math.Vec3{X: float32(p.TrunkLowRadius * c), Z: float32(p.TrunkLowRadius * s)}
		top := math.Vec3{X: float32(p.TrunkTopRadius * c), Y: float32(p.TrunkHeight), Z: float32(p.TrunkTopRadius * s)}
		emit(low, math.Vec2{X: u, Y: 0}, low.Mul(grow))
		emit(top, math.Vec2{X: u, Y: 1}, top.Mul(grow))
	}
	for i := 0; i < 2; i++ {
		emit(b.Vertices[trunkStart+i], b.TexCoords[trunkStart+i], b.OutlineVertices[trunkStart+i])
	}

	b.Ranges = append(b.Ranges, mesh.Range{
		Name: "trunk", Primitive: mesh.TriangleStrip, Source: mesh.Arrays,
		Offset: trunkStart, Count: trunk,
	})
	return b, nil
}
