// Package model generates the meshes the snowmen and trees are assembled
// from. Every generator returns a fresh mesh.Buffer in model space; placement
// happens at draw time.
package model

// Rand is the random source tree generation draws from.
// math/rand/v2's *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}
