// Package texture paints the scene's textures and loads replacements
// from disk.
package texture

import (
	"errors"
	"fmt"
	"image"
	"sort"
)

// Name identifies one of the scene textures.
type Name string

// Scene textures.
const (
	Base  Name = "base"  // bottom snowball
	Torso Name = "torso" // middle snowball, buttons
	Head  Name = "head"  // top snowball, face
	Hills Name = "hills"
	Ice   Name = "ice"
	Shore Name = "shore"
	Trees Name = "trees"
)

// Names lists every texture the scene needs.
var Names = []Name{Base, Torso, Head, Hills, Ice, Shore, Trees}

// ErrMissing is returned when a set lacks a texture the scene needs.
var ErrMissing = errors.New("texture missing")

// Set maps each texture to its pixels.
type Set map[Name]*image.RGBA

// Validate checks that every scene texture is present and square.
func (s Set) Validate() error {
	for _, n := range Names {
		img, ok := s[n]
		if !ok || img == nil {
			return fmt.Errorf("%w: %s", ErrMissing, n)
		}
		b := img.Bounds()
		if b.Dx() != b.Dy() || b.Dx() == 0 {
			return fmt.Errorf("texture %s is %dx%d, want a non-empty square", n, b.Dx(), b.Dy())
		}
	}
	return nil
}

// Sorted returns the names in the set in a stable order.
func (s Set) Sorted() []Name {
	out := make([]Name, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
