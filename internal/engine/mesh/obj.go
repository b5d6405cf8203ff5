package mesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ exports buffers as a Wavefront OBJ document, one object per
// buffer and one group per range. Texture coordinates are written when the
// buffer has them.
func WriteOBJ(w io.Writer, bufs ...*Buffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# snowmen scene export")

	base, tbase := 1, 1
	for _, b := range bufs {
		fmt.Fprintf(bw, "o %s\n", b.Name)
		for _, v := range b.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		textured := b.TexCoords != nil
		for _, t := range b.TexCoords {
			fmt.Fprintf(bw, "vt %g %g\n", t.X, t.Y)
		}

		for _, r := range b.Ranges {
			fmt.Fprintf(bw, "g %s_%s\n", b.Name, r.Name)
			for _, tri := range b.Triangles(r) {
				a, c, d := base+int(tri[0]), base+int(tri[1]), base+int(tri[2])
				if textured {
					ta, tc, td := tbase+int(tri[0]), tbase+int(tri[1]), tbase+int(tri[2])
					fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, ta, c, tc, d, td)
				} else {
					fmt.Fprintf(bw, "f %d %d %d\n", a, c, d)
				}
			}
		}
		base += len(b.Vertices)
		tbase += len(b.TexCoords)
	}
	return bw.Flush()
}
