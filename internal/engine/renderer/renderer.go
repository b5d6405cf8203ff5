// Package renderer executes draw lists with OpenGL.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/snowmen/internal/engine/drawlist"
	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/internal/engine/shader"
	"github.com/Faultbox/snowmen/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

type buffer struct {
	id   uint32
	kind drawlist.BufferKind
	name string
}

// Renderer implements drawlist.Uploader, drawlist.Sink and
// drawlist.Releaser on the current OpenGL context.
type Renderer struct {
	config Config
	log    *zap.Logger
	scene  *shader.Scene
	vao    uint32

	buffers  map[drawlist.Handle]buffer
	textures map[drawlist.Handle]uint32
	next     drawlist.Handle

	frame drawlist.Frame
	pass  drawlist.Pass
	draws int
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		buffers:  make(map[drawlist.Handle]buffer),
		textures: make(map[drawlist.Handle]uint32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	if r.scene, err = shader.NewScene(); err != nil {
		return nil, err
	}
	gl.GenVertexArrays(1, &r.vao)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearStencil(1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close frees the program and every resource that was not released.
func (r *Renderer) Close() error {
	r.log.Info("closing renderer", zap.Int("buffers", len(r.buffers)), zap.Int("textures", len(r.textures)))

	var handles []drawlist.Handle
	for h := range r.buffers {
		handles = append(handles, h)
	}
	for h := range r.textures {
		handles = append(handles, h)
	}
	err := r.Release(handles...)

	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	r.scene.Delete()
	return err
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// UploadBuffer implements drawlist.Uploader.
func (r *Renderer) UploadBuffer(name string, kind drawlist.BufferKind, data []byte) (drawlist.Handle, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("renderer: empty %s buffer %q", kind, name)
	}
	target := uint32(gl.ARRAY_BUFFER)
	if kind == drawlist.IndexBuffer {
		target = gl.ELEMENT_ARRAY_BUFFER
	}

	var id uint32
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &id)
	gl.BindBuffer(target, id)
	gl.BufferData(target, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(target, 0)
	gl.BindVertexArray(0)

	r.next++
	r.buffers[r.next] = buffer{id: id, kind: kind, name: name}
	r.log.Debug("buffer uploaded",
		zap.String("name", name),
		zap.Stringer("kind", kind),
		zap.Int("bytes", len(data)))
	return r.next, nil
}

// CreateTexture implements drawlist.Uploader. Textures repeat mirrored so
// the shore and hills tile without seams.
func (r *Renderer) CreateTexture(name string, img *image.RGBA) (drawlist.Handle, error) {
	if img == nil || len(img.Pix) == 0 {
		return 0, fmt.Errorf("renderer: empty texture %q", name)
	}
	b := img.Bounds()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.next++
	r.textures[r.next] = id
	r.log.Debug("texture created", zap.String("name", name), zap.Int("size", b.Dx()))
	return r.next, nil
}

// Release implements drawlist.Releaser.
func (r *Renderer) Release(handles ...drawlist.Handle) error {
	var err error
	for _, h := range handles {
		if b, ok := r.buffers[h]; ok {
			gl.DeleteBuffers(1, &b.id)
			delete(r.buffers, h)
			continue
		}
		if id, ok := r.textures[h]; ok {
			gl.DeleteTextures(1, &id)
			delete(r.textures, h)
			continue
		}
		err = multierr.Append(err, fmt.Errorf("renderer: unknown handle %d", h))
	}
	return err
}

// Begin implements drawlist.Sink.
func (r *Renderer) Begin(f drawlist.Frame) {
	r.frame = f
	r.pass = drawlist.PassReflection
	r.draws = 0

	gl.ClearColor(f.Clear[0], f.Clear[1], f.Clear[2], f.Clear[3])
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

	r.scene.Use()
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	r.enterPass(r.pass)
}

// Draw implements drawlist.Sink.
func (r *Renderer) Draw(cmd drawlist.Command) {
	if cmd.Pass != r.pass {
		r.leavePass(r.pass)
		r.pass = cmd.Pass
		r.enterPass(r.pass)
	}

	setCull(cmd.Cull)
	if cmd.Pass != drawlist.PassShadow {
		gl.DepthMask(cmd.DepthWrite)
	}

	mvp := r.frame.Projection.Mul(cmd.Transform)
	gl.UniformMatrix4fv(r.scene.MVP, 1, false, mvp.Ptr())
	gl.Uniform4f(r.scene.Color, cmd.Color[0], cmd.Color[1], cmd.Color[2], cmd.Color[3])

	vb, ok := r.buffers[cmd.Vertices]
	if !ok {
		r.log.Warn("draw with unknown vertex buffer", zap.String("mesh", cmd.Mesh))
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.VertexAttribPointerWithOffset(shader.AttribPosition, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(shader.AttribPosition)

	if tb, ok := r.buffers[cmd.TexCoords]; ok && cmd.Textured() {
		gl.BindBuffer(gl.ARRAY_BUFFER, tb.id)
		gl.VertexAttribPointerWithOffset(shader.AttribTexCoord, 2, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(shader.AttribTexCoord)
		gl.BindTexture(gl.TEXTURE_2D, r.textures[cmd.Texture])
		gl.Uniform1i(r.scene.Textured, 1)
	} else {
		gl.DisableVertexAttribArray(shader.AttribTexCoord)
		gl.Uniform1i(r.scene.Textured, 0)
	}

	mode := primitiveMode(cmd.Range.Primitive)
	if cmd.Range.Source == mesh.Elements {
		ib, ok := r.buffers[cmd.Indices]
		if !ok {
			r.log.Warn("draw with unknown index buffer", zap.String("mesh", cmd.Mesh))
			return
		}
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
		gl.DrawElementsWithOffset(mode, int32(cmd.Range.Count), gl.UNSIGNED_INT, uintptr(cmd.Range.Offset*4))
	} else {
		gl.DrawArrays(mode, int32(cmd.Range.Offset), int32(cmd.Range.Count))
	}
	r.draws++
}

// End implements drawlist.Sink.
func (r *Renderer) End() {
	r.leavePass(r.pass)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

// Draws returns the number of draw calls in the last frame.
func (r *Renderer) Draws() int {
	return r.draws
}

// enterPass sets the state a whole pass shares. Shadows are drawn without
// depth testing and, with the stencil on, each pixel at most once so
// overlapping shadows do not darken.
func (r *Renderer) enterPass(p drawlist.Pass) {
	if p != drawlist.PassShadow {
		return
	}
	gl.DepthMask(false)
	gl.DepthFunc(gl.ALWAYS)
	if r.frame.Stencil {
		gl.Enable(gl.STENCIL_TEST)
		gl.StencilFunc(gl.EQUAL, 1, 1)
		gl.StencilOp(gl.KEEP, gl.KEEP, gl.ZERO)
	}
}

func (r *Renderer) leavePass(p drawlist.Pass) {
	if p != drawlist.PassShadow {
		return
	}
	gl.Disable(gl.STENCIL_TEST)
	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

func setCull(c drawlist.Cull) {
	switch c {
	case drawlist.CullNone:
		gl.Disable(gl.CULL_FACE)
	default:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(cullFace(c))
	}
}

func cullFace(c drawlist.Cull) uint32 {
	if c == drawlist.CullFront {
		return gl.FRONT
	}
	return gl.BACK
}

func primitiveMode(p mesh.Primitive) uint32 {
	switch p {
	case mesh.TriangleFan:
		return gl.TRIANGLE_FAN
	case mesh.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

// ReadPixels reads the framebuffer back as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

var _ interface {
	drawlist.Uploader
	drawlist.Sink
	drawlist.Releaser
} = (*Renderer)(nil)
