// Package mesh defines the vertex buffers produced by the scene generators
// and the named draw ranges the render sequencer addresses them with.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/snowmen/pkg/math"
)

// Validation errors.
var (
	ErrLengthMismatch  = errors.New("mesh: parallel array length mismatch")
	ErrIndexOutOfRange = errors.New("mesh: index out of range")
	ErrInvalidRange    = errors.New("mesh: invalid draw range")
)

// Primitive is the assembly rule for a draw range.
type Primitive uint8

// Primitive kinds.
const (
	Triangles Primitive = iota
	TriangleFan
	TriangleStrip
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleFan:
		return "fan"
	case TriangleStrip:
		return "strip"
	default:
		return fmt.Sprintf("primitive(%d)", uint8(p))
	}
}

// Source selects whether a range walks vertices directly or through the
// index array.
type Source uint8

// Range sources.
const (
	Arrays Source = iota
	Elements
)

// Range is a named slice of a buffer drawn with one primitive.
// Offset and Count are in vertices for Arrays and in indices for Elements.
type Range struct {
	Name      string
	Primitive Primitive
	Source    Source
	Offset    int
	Count     int
}

// Buffer is one generated mesh. It is built once and never mutated.
//
// TexCoords and OutlineVertices are optional; when present they run parallel
// to Vertices. The outline shares the topology of the main vertices and is
// drawn in ink with reversed culling.
type Buffer struct {
	Name            string
	Vertices        []math.Vec3
	TexCoords       []math.Vec2
	OutlineVertices []math.Vec3
	Indices         []uint32
	Ranges          []Range
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int {
	return len(b.Vertices)
}

// Range looks up a draw range by name.
func (b *Buffer) Range(name string) (Range, bool) {
	for _, r := range b.Ranges {
		if r.Name == name {
			return r, true
		}
	}
	return Range{}, false
}

// MustRange is Range for names fixed at build time. It panics when the
// range is missing.
func (b *Buffer) MustRange(name string) Range {
	r, ok := b.Range(name)
	if !ok {
		panic(fmt.Sprintf("mesh %s: no range %q", b.Name, name))
	}
	return r
}

// Validate checks that parallel arrays agree and every index and range
// stays inside the buffer.
func (b *Buffer) Validate() error {
	n := len(b.Vertices)
	if b.TexCoords != nil && len(b.TexCoords) != n {
		return fmt.Errorf("%w: %s has %d texcoords for %d vertices", ErrLengthMismatch, b.Name, len(b.TexCoords), n)
	}
	if b.OutlineVertices != nil && len(b.OutlineVertices) != n {
		return fmt.Errorf("%w: %s has %d outline vertices for %d vertices", ErrLengthMismatch, b.Name, len(b.OutlineVertices), n)
	}
	for i, idx := range b.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: %s index[%d] = %d, have %d vertices", ErrIndexOutOfRange, b.Name, i, idx, n)
		}
	}
	for _, r := range b.Ranges {
		limit := n
		if r.Source == Elements {
			limit = len(b.Indices)
		}
		if r.Offset < 0 || r.Count < 0 || r.Offset+r.Count > limit {
			return fmt.Errorf("%w: %s/%s [%d,+%d) exceeds %d", ErrInvalidRange, b.Name, r.Name, r.Offset, r.Count, limit)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounds of the vertices.
func (b *Buffer) Bounds() (min, max math.Vec3) {
	if len(b.Vertices) == 0 {
		return
	}
	min, max = b.Vertices[0], b.Vertices[0]
	for _, v := range b.Vertices[1:] {
		min.X, max.X = minf(min.X, v.X), maxf(max.X, v.X)
		min.Y, max.Y = minf(min.Y, v.Y), maxf(max.Y, v.Y)
		min.Z, max.Z = minf(min.Z, v.Z), maxf(max.Z, v.Z)
	}
	return
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
