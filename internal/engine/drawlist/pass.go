package drawlist

// PassContext carries the render state a pass imposes on every shape drawn
// in it. Shapes ask the context for culling instead of reading globals, so
// the mirrored pass can flip winding without touching them.
type PassContext struct {
	Pass   Pass
	Mirror bool
	Shadow bool

	// CullFront and CullBack are the modes that cull the geometric front
	// and back faces in this pass. Mirroring swaps them.
	CullFront Cull
	CullBack  Cull
}

// NewPassContext returns the context for a pass.
func NewPassContext(pass Pass, mirror bool) PassContext {
	ctx := PassContext{
		Pass:      pass,
		Mirror:    mirror,
		Shadow:    pass == PassShadow,
		CullFront: CullFront,
		CullBack:  CullBack,
	}
	if mirror {
		ctx.CullFront, ctx.CullBack = CullBack, CullFront
	}
	return ctx
}
