package entity

import (
	"fmt"

	"github.com/Faultbox/snowmen/internal/engine/terrain"
	"github.com/Faultbox/snowmen/pkg/math"
)

// TreeCount is the number of trees PlaceTrees plants. It follows from the
// grouping rule below and must change with it.
const TreeCount = 27

const treeGroups = 12

// Tree is one static tree instance.
type Tree struct {
	Location    math.Vec3
	Height      float32
	SkirtRadius float32
	Rotation    float64 // degrees about +Y
}

// PlaceTrees plants trees in groups around the pond, between the shore and
// the hills. Groups repeat the pattern one, three, two, three trees: every
// group has an anchor tree, all but every fourth get a tree just behind it
// and odd groups get one further out.
func PlaceTrees(boundary []math.Vec3, rng Rand) ([]Tree, error) {
	n := len(boundary)
	if n < treeGroups {
		return nil, fmt.Errorf("entity: pond boundary has %d vertices, need %d for tree groups", n, treeGroups)
	}

	trees := make([]Tree, 0, TreeCount)
	plant := func(loc math.Vec3, height, radius float32) {
		trees = append(trees, Tree{
			Location:    loc,
			Height:      height,
			SkirtRadius: radius,
			Rotation:    rng.Float64() * 360,
		})
	}

	for i := 0; i < treeGroups; i++ {
		edge := boundary[i*n/treeGroups]
		d := edge.XZ().Length()
		dist := d*0.85 + terrain.UniverseEdgeRadius*0.15

		loc := math.Vec3{X: edge.X / d * dist, Y: terrain.ShoreHeight, Z: edge.Z / d * dist}
		plant(loc, 8, 3)

		if i%4 != 0 {
			near := loc
			near.X += 0.5*loc.X + 0.2*loc.Z
			near.Z += 0.5*loc.Z - 0.1*loc.X
			plant(near, 12, 5)
		}
		if i%2 == 1 {
			far := loc
			far.X += 0.5*loc.X - 0.1*loc.Z
			far.Z += 0.7*loc.Z + 0.3*loc.X
			plant(far, 14, 5)
		}
	}
	return trees, nil
}
