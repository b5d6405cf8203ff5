package drawlist

import (
	"fmt"
	"image"
	"io"
	"text/tabwriter"

	"go.uber.org/multierr"
)

// Resource is a buffer or texture created on a Recorder.
type Resource struct {
	Name    string
	Kind    string
	Size    int
	Texture bool
}

// Recorder is an in-memory backend. It hands out sequential handles and
// keeps every command of the most recent frame.
type Recorder struct {
	Resources map[Handle]Resource
	Frame     Frame
	Commands  []Command
	Frames    int

	next   Handle
	inside bool
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Resources: make(map[Handle]Resource)}
}

// UploadBuffer implements Uploader.
func (r *Recorder) UploadBuffer(name string, kind BufferKind, data []byte) (Handle, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("recorder: empty %s buffer %q", kind, name)
	}
	r.next++
	r.Resources[r.next] = Resource{Name: name, Kind: kind.String(), Size: len(data)}
	return r.next, nil
}

// CreateTexture implements Uploader.
func (r *Recorder) CreateTexture(name string, img *image.RGBA) (Handle, error) {
	if img == nil {
		return 0, fmt.Errorf("recorder: nil texture %q", name)
	}
	r.next++
	r.Resources[r.next] = Resource{Name: name, Kind: "texture", Size: len(img.Pix), Texture: true}
	return r.next, nil
}

// Release implements Releaser.
func (r *Recorder) Release(handles ...Handle) error {
	var err error
	for _, h := range handles {
		if _, ok := r.Resources[h]; !ok {
			err = multierr.Append(err, fmt.Errorf("recorder: unknown handle %d", h))
			continue
		}
		delete(r.Resources, h)
	}
	return err
}

// Begin implements Sink. It discards the previous frame's commands.
func (r *Recorder) Begin(f Frame) {
	r.Frame = f
	r.Commands = r.Commands[:0]
	r.inside = true
}

// Draw implements Sink.
func (r *Recorder) Draw(cmd Command) {
	if !r.inside {
		panic("drawlist: Draw outside Begin/End")
	}
	r.Commands = append(r.Commands, cmd)
}

// End implements Sink.
func (r *Recorder) End() {
	r.inside = false
	r.Frames++
}

// Filter returns the recorded commands matching keep.
func (r *Recorder) Filter(keep func(Command) bool) []Command {
	var out []Command
	for _, c := range r.Commands {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// InPass returns the recorded commands of one pass.
func (r *Recorder) InPass(p Pass) []Command {
	return r.Filter(func(c Command) bool { return c.Pass == p })
}

// WriteTrace prints the recorded frame as a table, one command per line.
func (r *Recorder) WriteTrace(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPASS\tMESH\tRANGE\tPRIM\tCOUNT\tCULL\tTEX\tDEPTH\tCOLOR")
	for i, c := range r.Commands {
		tex := "-"
		if c.Textured() {
			tex = r.Resources[c.Texture].Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%t\t%.2f,%.2f,%.2f,%.2f\n",
			i, c.Pass, c.Mesh, c.Range.Name, c.Range.Primitive, c.Range.Count,
			c.Cull, tex, c.DepthWrite, c.Color[0], c.Color[1], c.Color[2], c.Color[3])
	}
	return tw.Flush()
}
