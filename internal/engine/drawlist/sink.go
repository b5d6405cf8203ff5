package drawlist

import (
	"fmt"
	"image"

	"github.com/Faultbox/snowmen/internal/engine/mesh"
)

// BufferKind tells the backend how a buffer will be bound.
type BufferKind uint8

// Buffer kinds.
const (
	VertexBuffer BufferKind = iota
	TexCoordBuffer
	IndexBuffer
)

func (k BufferKind) String() string {
	switch k {
	case VertexBuffer:
		return "vertex"
	case TexCoordBuffer:
		return "texcoord"
	case IndexBuffer:
		return "index"
	default:
		return fmt.Sprintf("buffer(%d)", uint8(k))
	}
}

// Uploader creates GPU resources. It is used once, while the scene is built.
type Uploader interface {
	// UploadBuffer copies little-endian float32 or uint32 data to the GPU.
	UploadBuffer(name string, kind BufferKind, data []byte) (Handle, error)
	CreateTexture(name string, img *image.RGBA) (Handle, error)
}

// Sink receives a frame's commands in draw order.
type Sink interface {
	Begin(f Frame)
	Draw(cmd Command)
	End()
}

// Releaser frees resources created by an Uploader.
type Releaser interface {
	Release(handles ...Handle) error
}

// MeshHandles are the buffers backing one uploaded mesh.
type MeshHandles struct {
	Vertices  Handle
	TexCoords Handle
	Outline   Handle
	Indices   Handle
}

// All returns the non-zero handles.
func (h MeshHandles) All() []Handle {
	var out []Handle
	for _, x := range []Handle{h.Vertices, h.TexCoords, h.Outline, h.Indices} {
		if x != 0 {
			out = append(out, x)
		}
	}
	return out
}

// UploadMesh validates b and uploads each of its arrays.
func UploadMesh(u Uploader, b *mesh.Buffer) (MeshHandles, error) {
	var h MeshHandles
	if err := b.Validate(); err != nil {
		return h, err
	}

	var err error
	if h.Vertices, err = u.UploadBuffer(b.Name, VertexBuffer, mesh.Vec3Bytes(b.Vertices)); err != nil {
		return h, fmt.Errorf("uploading %s vertices: %w", b.Name, err)
	}
	if b.TexCoords != nil {
		if h.TexCoords, err = u.UploadBuffer(b.Name, TexCoordBuffer, mesh.Vec2Bytes(b.TexCoords)); err != nil {
			return h, fmt.Errorf("uploading %s texcoords: %w", b.Name, err)
		}
	}
	if b.OutlineVertices != nil {
		if h.Outline, err = u.UploadBuffer(b.Name+"_outline", VertexBuffer, mesh.Vec3Bytes(b.OutlineVertices)); err != nil {
			return h, fmt.Errorf("uploading %s outline: %w", b.Name, err)
		}
	}
	if b.Indices != nil {
		if h.Indices, err = u.UploadBuffer(b.Name, IndexBuffer, mesh.IndexBytes(b.Indices)); err != nil {
			return h, fmt.Errorf("uploading %s indices: %w", b.Name, err)
		}
	}
	return h, nil
}
