package mesh

import (
	"encoding/binary"
	gomath "math"

	"github.com/Faultbox/snowmen/pkg/math"
)

// Vec3Bytes packs positions as tightly packed little-endian float32 triples,
// the layout the GPU vertex attribute expects.
func Vec3Bytes(vs []math.Vec3) []byte {
	buf := make([]byte, 0, len(vs)*12)
	for _, v := range vs {
		buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.X))
		buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.Y))
		buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.Z))
	}
	return buf
}

// Vec2Bytes packs texture coordinates as little-endian float32 pairs.
func Vec2Bytes(vs []math.Vec2) []byte {
	buf := make([]byte, 0, len(vs)*8)
	for _, v := range vs {
		buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.X))
		buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.Y))
	}
	return buf
}

// IndexBytes packs indices as little-endian uint32.
func IndexBytes(idx []uint32) []byte {
	buf := make([]byte, 0, len(idx)*4)
	for _, i := range idx {
		buf = binary.LittleEndian.AppendUint32(buf, i)
	}
	return buf
}
