package drawlist

import (
	"github.com/Faultbox/snowmen/pkg/math"
)

// MatrixStack composes model-view transforms the way a scene graph walks
// its parts: each operation post-multiplies the top, so the last transform
// applied is the first one a vertex sees.
type MatrixStack struct {
	stack []math.Mat4
}

// NewMatrixStack returns a stack whose top is base.
func NewMatrixStack(base math.Mat4) *MatrixStack {
	s := &MatrixStack{stack: make([]math.Mat4, 1, 8)}
	s.stack[0] = base
	return s
}

// Top returns the current matrix.
func (s *MatrixStack) Top() math.Mat4 {
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of saved matrices above the base.
func (s *MatrixStack) Depth() int {
	return len(s.stack) - 1
}

// Push saves the current matrix.
func (s *MatrixStack) Push() {
	s.stack = append(s.stack, s.Top())
}

// Pop restores the last saved matrix. Popping the base is a programming
// error and panics.
func (s *MatrixStack) Pop() {
	if len(s.stack) == 1 {
		panic("drawlist: matrix stack underflow")
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// Mul post-multiplies the top by m.
func (s *MatrixStack) Mul(m math.Mat4) {
	top := len(s.stack) - 1
	s.stack[top] = s.stack[top].Mul(m)
}

// Translate applies a translation.
func (s *MatrixStack) Translate(x, y, z float32) {
	s.Mul(math.Translate(x, y, z))
}

// Scale applies a scale.
func (s *MatrixStack) Scale(x, y, z float32) {
	s.Mul(math.Scale(x, y, z))
}

// RotateY applies a rotation about Y, in degrees.
func (s *MatrixStack) RotateY(deg float64) {
	s.Mul(math.RotateY(float32(math.Deg2Rad(deg))))
}

// RotateZ applies a rotation about Z, in degrees.
func (s *MatrixStack) RotateZ(deg float64) {
	s.Mul(math.RotateZ(float32(math.Deg2Rad(deg))))
}
