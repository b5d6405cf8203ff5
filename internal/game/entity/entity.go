// Package entity holds the scene's actors: the skating snowmen and the
// trees around the pond. Actors are created once from a random source and
// never added or removed afterwards.
package entity

import (
	"fmt"

	"github.com/Faultbox/snowmen/pkg/math"
)

// Rand is the random source actor creation draws from.
// math/rand/v2's *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Registry owns every actor in the scene.
type Registry struct {
	Snowmen []Snowman
	Trees   []Tree
}

// NewRegistry creates count snowmen and plants the trees along boundary.
// Snowmen are created first, so for a given seed the snowmen do not change
// when the pond shape does.
func NewRegistry(count int, boundary []math.Vec3, rng Rand) (*Registry, error) {
	snowmen, err := NewSnowmen(count, rng)
	if err != nil {
		return nil, err
	}
	trees, err := PlaceTrees(boundary, rng)
	if err != nil {
		return nil, err
	}
	return &Registry{Snowmen: snowmen, Trees: trees}, nil
}

// Update recomputes every snowman's pose for the global phase.
func (r *Registry) Update(phase float64) {
	for i := range r.Snowmen {
		r.Snowmen[i].Update(phase)
	}
}

func (r *Registry) String() string {
	return fmt.Sprintf("%d snowmen, %d trees", len(r.Snowmen), len(r.Trees))
}
