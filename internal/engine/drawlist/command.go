// Package drawlist describes a frame as an ordered list of draw commands and
// defines the interfaces a graphics backend implements to execute them.
package drawlist

import (
	"fmt"

	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// Handle identifies a GPU resource created through an Uploader.
// The zero Handle means "none".
type Handle uint32

// Pass groups the commands of one render pass.
type Pass uint8

// Passes in the order the scene draws them.
const (
	PassReflection Pass = iota // mirrored scene seen through the ice
	PassSurface                // ice and shore over the reflection
	PassShadow                 // flattened silhouettes on ice and snow
	PassReal                   // the scene itself
)

func (p Pass) String() string {
	switch p {
	case PassReflection:
		return "reflection"
	case PassSurface:
		return "surface"
	case PassShadow:
		return "shadow"
	case PassReal:
		return "real"
	default:
		return fmt.Sprintf("pass(%d)", uint8(p))
	}
}

// Cull selects which faces are discarded.
type Cull uint8

// Cull modes.
const (
	CullNone Cull = iota
	CullBack
	CullFront
)

func (c Cull) String() string {
	switch c {
	case CullNone:
		return "none"
	case CullBack:
		return "back"
	case CullFront:
		return "front"
	default:
		return fmt.Sprintf("cull(%d)", uint8(c))
	}
}

// Command is one draw call. Transform is the full model-view matrix; the
// projection comes from the Frame.
type Command struct {
	Pass      Pass
	Mesh      string
	Vertices  Handle
	TexCoords Handle // zero when untextured
	Indices   Handle // zero for Arrays ranges
	Range     mesh.Range
	Transform math.Mat4
	Cull      Cull
	Color     math.Vec4
	Texture   Handle // zero when untextured
	// DepthWrite is false for translucent surfaces such as the ice.
	DepthWrite bool
}

// Textured reports whether the command samples a texture.
func (c Command) Textured() bool {
	return c.Texture != 0
}

// Frame carries the per-frame state that applies to every command.
type Frame struct {
	Projection math.Mat4
	Clear      math.Vec4
	// Stencil enables the shadow stencil: the buffer is cleared to 1 and
	// each shadow pixel is drawn once.
	Stencil bool
}
