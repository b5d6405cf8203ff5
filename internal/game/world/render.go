package world

import (
	"github.com/Faultbox/snowmen/internal/engine/drawlist"
	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/internal/engine/model"
	"github.com/Faultbox/snowmen/internal/engine/texture"
	"github.com/Faultbox/snowmen/internal/game/entity"
	"github.com/Faultbox/snowmen/pkg/math"
)

// Snowman proportions.
const (
	snowballRadius   = 1.0
	snowballOverlap  = 1.2
	snowballShrink   = 0.75
	outlineIncrement = 0.06

	skateLateral = 0.7
	skateHeight  = 0.01
	skateScale   = 1.0 / 30

	carrotLift = 1.9
	hatLift    = 1.09
)

// Render emits one frame. Passes run in order: the mirrored scene under the
// ice, the ice and shore over it, flattened shadows, then the scene.
func (w *World) Render(s drawlist.Sink, aspect float32) {
	s.Begin(drawlist.Frame{
		Projection: w.Camera.Projection(aspect),
		Clear:      SkyColor,
		Stencil:    w.cfg.Shadows,
	})
	view := w.Camera.ViewMatrix()

	if w.cfg.Reflections {
		p := w.painter(s, view, drawlist.PassReflection, false)
		p.ice()

		m := w.painter(s, view, drawlist.PassReflection, true)
		m.stack.Scale(1, -1, 1)
		m.shore()
		m.trees()
		m.snowmen()
	}

	p := w.painter(s, view, drawlist.PassSurface, false)
	p.ice()
	p.shore()

	if w.cfg.Shadows {
		p = w.painter(s, view, drawlist.PassShadow, false)
		p.stack.Push()
		p.stack.Mul(w.Projector.Pond)
		p.snowmen()
		p.stack.Pop()

		p.stack.Push()
		p.stack.Mul(w.Projector.Shore)
		p.trees()
		p.stack.Pop()
	}

	p = w.painter(s, view, drawlist.PassReal, false)
	p.hills()
	p.trees()
	p.snowmen()

	s.End()
}

// painter draws shapes for one pass. The stack starts at the view matrix.
type painter struct {
	w     *World
	sink  drawlist.Sink
	ctx   drawlist.PassContext
	stack *drawlist.MatrixStack
}

func (w *World) painter(s drawlist.Sink, view math.Mat4, pass drawlist.Pass, mirror bool) *painter {
	return &painter{
		w:     w,
		sink:  s,
		ctx:   drawlist.NewPassContext(pass, mirror),
		stack: drawlist.NewMatrixStack(view),
	}
}

type style struct {
	cull    drawlist.Cull
	color   math.Vec4
	tex     texture.Name // empty when untextured
	outline bool         // use the mesh's outline vertices
	noDepth bool
}

// draw emits one range. In the shadow pass every shape is drawn flat in the
// shadow color, untextured and without writing depth.
func (p *painter) draw(b *mesh.Buffer, rangeName string, st style) {
	h := p.w.handles[b.Name]
	r := b.MustRange(rangeName)

	cmd := drawlist.Command{
		Pass:       p.ctx.Pass,
		Mesh:       b.Name,
		Vertices:   h.Vertices,
		Range:      r,
		Transform:  p.stack.Top(),
		Cull:       st.cull,
		Color:      st.color,
		DepthWrite: !st.noDepth,
	}
	if st.outline {
		cmd.Mesh = b.Name + "_outline"
		cmd.Vertices = h.Outline
	}
	if r.Source == mesh.Elements {
		cmd.Indices = h.Indices
	}
	if st.tex != "" {
		cmd.TexCoords = h.TexCoords
		cmd.Texture = p.w.textures[st.tex]
	}
	if p.ctx.Shadow {
		cmd.Color = ShadowColor
		cmd.TexCoords, cmd.Texture = 0, 0
		cmd.DepthWrite = false
	}
	p.sink.Draw(cmd)
}

func (p *painter) ice() {
	p.draw(p.w.Pond.Mesh, "surface", style{
		cull:    drawlist.CullNone,
		color:   IceColor,
		tex:     texture.Ice,
		noDepth: true,
	})
}

func (p *painter) shore() {
	p.draw(p.w.shore, "surface", style{cull: p.ctx.CullBack, color: SnowColor, tex: texture.Shore})
}

func (p *painter) hills() {
	p.draw(p.w.hills, "wall", style{cull: p.ctx.CullBack, color: SnowColor, tex: texture.Hills})
}

func (p *painter) trees() {
	for _, t := range p.w.Actors.Trees {
		p.tree(t)
	}
}

func (p *painter) snowmen() {
	for i := range p.w.Actors.Snowmen {
		p.snowman(&p.w.Actors.Snowmen[i])
	}
}

func (p *painter) tree(t entity.Tree) {
	b := p.w.tree
	p.stack.Push()
	defer p.stack.Pop()

	p.stack.Translate(t.Location.X, t.Location.Y, t.Location.Z)
	p.stack.Scale(t.SkirtRadius, t.Height, t.SkirtRadius)
	p.stack.RotateY(t.Rotation)

	skirts := p.w.cfg.TreeSkirts
	for j := 0; j < skirts; j++ {
		p.draw(b, model.SkirtRangeName(j), style{cull: drawlist.CullNone, color: White, tex: texture.Trees})
	}
	// Skirt shadows cover the trunk's.
	if p.ctx.Shadow {
		return
	}

	p.draw(b, "trunk", style{cull: p.ctx.CullBack, color: TrunkColor})

	ink := style{cull: p.ctx.CullFront, color: InkColor, outline: true}
	for j := 0; j < skirts; j++ {
		p.draw(b, model.SkirtRangeName(j), ink)
	}
	p.draw(b, "trunk", ink)
}

func (p *painter) snowman(s *entity.Snowman) {
	p.stack.Push()
	defer p.stack.Pop()

	p.stack.Translate(s.Pose.Position.X, 0, s.Pose.Position.Y)
	p.stack.RotateY(s.Pose.Heading)
	p.skate(true)
	p.skate(false)
	p.stack.RotateZ(s.Pose.Tilt)

	radius := float32(snowballRadius)
	p.stack.Translate(0, snowballOverlap, 0)
	p.stack.RotateY(s.BaseRotation)
	p.snowball(radius, texture.Base)
	p.stack.RotateY(-s.BaseRotation)

	radius *= snowballShrink
	p.stack.Translate(0, radius+snowballShrink/snowballOverlap, 0)
	p.snowball(radius, texture.Torso)
	p.arms()

	radius *= snowballShrink
	p.stack.Translate(0, radius+snowballShrink/snowballOverlap, 0)
	p.snowball(radius, texture.Head)
	p.carrot(radius)
	p.hat(s.HatColor, radius)
}

func (p *painter) skate(left bool) {
	p.stack.Push()
	defer p.stack.Pop()

	x := float32(-skateLateral)
	if left {
		x = skateLateral
	}
	p.stack.Translate(x, skateHeight, 0)
	p.stack.Scale(skateScale, skateScale, skateScale)
	for _, r := range model.SkateRanges {
		p.draw(p.w.skate, r, style{cull: p.ctx.CullBack, color: SkateColor})
	}
}

// snowball draws a textured ball and, behind it, a slightly larger ink ball
// with its front faces culled so only the rim shows.
func (p *painter) snowball(radius float32, tex texture.Name) {
	p.stack.Push()
	defer p.stack.Pop()

	p.stack.Scale(radius, radius, radius)
	if !p.ctx.Shadow {
		p.draw(p.w.snowball, "surface", style{cull: p.ctx.CullBack, color: SnowColor, tex: tex})
	}
	grow := (radius + outlineIncrement) / radius
	p.stack.Scale(grow, grow, grow)
	p.draw(p.w.snowball, "surface", style{cull: p.ctx.CullFront, color: InkColor})
}

// arms draws the right arm, then mirrors it for the left. Mirroring flips
// the winding, so each side swaps the face it culls.
func (p *painter) arms() {
	b := p.w.arm
	p.stack.Push()
	defer p.stack.Pop()

	culls := [2]drawlist.Cull{p.ctx.CullBack, p.ctx.CullFront}
	for _, cull := range culls {
		st := style{cull: cull, color: ArmColor}
		p.draw(b, model.ArmLimb, st)
		for _, f := range model.ArmFingers {
			p.draw(b, f, st)
		}
		p.stack.Scale(-1, 1, 1)
	}
	if p.ctx.Shadow {
		return
	}

	// Two flips leave the stack on the right arm again.
	for _, cull := range [2]drawlist.Cull{culls[1], culls[0]} {
		st := style{cull: cull, color: InkColor, outline: true}
		p.draw(b, model.ArmLimb, st)
		p.draw(b, model.ArmShoulderCap, st)
		for _, f := range model.ArmFingers {
			p.draw(b, f, st)
		}
		p.stack.Scale(-1, 1, 1)
	}
}

// carrot draws the ink hull first, then the orange nose shrunk inside it.
func (p *painter) carrot(radius float32) {
	b := p.w.carrot
	p.stack.Push()
	defer p.stack.Pop()

	p.stack.Scale(radius, radius, radius)
	p.stack.Translate(0, 0, radius*carrotLift)
	ink := style{cull: p.ctx.CullFront, color: InkColor}
	p.draw(b, model.CarrotBody, ink)
	p.draw(b, model.CarrotTip, ink)
	p.draw(b, model.CarrotBase, ink)
	if p.ctx.Shadow {
		return
	}

	p.stack.Scale(0.6, 0.6, 0.7)
	nose := style{cull: p.ctx.CullBack, color: CarrotColor}
	p.draw(b, model.CarrotBody, nose)
	p.draw(b, model.CarrotTip, nose)
}

func (p *painter) hat(color math.Vec4, radius float32) {
	b := p.w.hat
	p.stack.Push()
	defer p.stack.Pop()

	p.stack.Translate(0, radius*hatLift, 0)
	p.stack.Scale(radius, radius, radius)
	for _, r := range model.HatRanges {
		p.draw(b, r, style{cull: p.ctx.CullBack, color: color})
	}
	if p.ctx.Shadow {
		return
	}
	for _, r := range model.HatRanges {
		p.draw(b, r, style{cull: p.ctx.CullFront, color: InkColor, outline: true})
	}
}
