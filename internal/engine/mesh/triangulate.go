package mesh

// VertexIndices resolves a range to the vertex indices it walks, in draw
// order.
func (b *Buffer) VertexIndices(r Range) []uint32 {
	out := make([]uint32, r.Count)
	for i := range out {
		if r.Source == Elements {
			out[i] = b.Indices[r.Offset+i]
		} else {
			out[i] = uint32(r.Offset + i)
		}
	}
	return out
}

// Triangles expands a range into the triangles the rasterizer would see.
// Strips alternate winding so every triangle keeps the orientation of the
// first one. Triangles that reuse an index are dropped.
func (b *Buffer) Triangles(r Range) [][3]uint32 {
	idx := b.VertexIndices(r)
	var tris [][3]uint32

	add := func(a, b, c uint32) {
		if a == b || b == c || a == c {
			return
		}
		tris = append(tris, [3]uint32{a, b, c})
	}

	switch r.Primitive {
	case Triangles:
		for i := 0; i+2 < len(idx); i += 3 {
			add(idx[i], idx[i+1], idx[i+2])
		}
	case TriangleFan:
		for i := 1; i+1 < len(idx); i++ {
			add(idx[0], idx[i], idx[i+1])
		}
	case TriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			if i%2 == 0 {
				add(idx[i], idx[i+1], idx[i+2])
			} else {
				add(idx[i+1], idx[i], idx[i+2])
			}
		}
	}
	return tris
}

// TriangleCount sums the non-degenerate triangles over every range.
func (b *Buffer) TriangleCount() int {
	n := 0
	for _, r := range b.Ranges {
		n += len(b.Triangles(r))
	}
	return n
}
