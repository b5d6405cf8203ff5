package texture

import (
	"fmt"
	"image"
	gomath "math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// TreeOutlineWidth is the ink line width on a 512 pixel tree texture.
const TreeOutlineWidth = 16.0

var (
	snowWhite  = gg.RGB(1, 1, 1)
	snowShade  = gg.RGB(0.86, 0.9, 0.96)
	coal       = gg.RGB(0.08, 0.08, 0.1)
	iceLight   = gg.RGB(0.86, 0.95, 1)
	iceDeep    = gg.RGB(0.55, 0.75, 0.88)
	needleDark = gg.RGB(0.05, 0.33, 0.12)
	needleLite = gg.RGB(0.18, 0.55, 0.25)
)

// Paint draws every scene texture at size x size pixels. treeEdges is the
// number of rim vertices per tree skirt; the tree texture carries one ink
// line per rim edge, so it must match the tree mesh.
func Paint(size, treeEdges int) (Set, error) {
	if size < 16 {
		return nil, fmt.Errorf("texture size %d too small", size)
	}
	if treeEdges < 3 {
		return nil, fmt.Errorf("tree outline needs at least 3 edges, got %d", treeEdges)
	}

	painters := map[Name]func(*gg.Context, float64) error{
		Base:  paintBase,
		Torso: paintTorso,
		Head:  paintHead,
		Hills: paintHills,
		Ice:   paintIce,
		Shore: paintShore,
		Trees: func(dc *gg.Context, s float64) error { return paintTrees(dc, s, treeEdges) },
	}

	set := make(Set, len(painters))
	for _, n := range Names {
		img, err := render(size, painters[n])
		if err != nil {
			return nil, fmt.Errorf("painting %s: %w", n, err)
		}
		set[n] = img
	}
	return set, nil
}

func render(size int, paint func(*gg.Context, float64) error) (*image.RGBA, error) {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	if err := paint(dc, float64(size)); err != nil {
		return nil, err
	}
	return toRGBA(dc.Image()), nil
}

// toRGBA returns img as *image.RGBA, copying only when it has another type.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// snowField fills the square with soft snow: a bright center shading off
// towards the edges, which wrap round the underside of a snowball.
func snowField(dc *gg.Context, s float64) {
	dc.ClearWithColor(snowWhite)
	brush := gg.NewRadialGradientBrush(s/2, s/2, 0, s*0.75).
		AddColorStop(0, snowWhite).
		AddColorStop(1, snowShade)
	dc.SetFillBrush(brush)
	dc.DrawRectangle(0, 0, s, s)
	_ = dc.Fill()
}

func dot(dc *gg.Context, x, y, r float64) error {
	dc.SetFillBrush(gg.Solid(coal))
	dc.DrawCircle(x, y, r)
	return dc.Fill()
}

// Snowball front faces sit towards the top edge of the texture; the center
// is the top of the ball.

func paintBase(dc *gg.Context, s float64) error {
	snowField(dc, s)
	// Loose lumps of packed snow.
	dc.SetRGBA(0.8, 0.85, 0.93, 0.6)
	for i := 0; i < 7; i++ {
		a := float64(i) * gomath.Pi * 2 / 7
		dc.DrawCircle(s/2+gomath.Sin(a)*s*0.3, s/2+gomath.Cos(a)*s*0.3, s*0.02)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func paintTorso(dc *gg.Context, s float64) error {
	snowField(dc, s)
	for _, v := range []float64{0.3, 0.2, 0.1} {
		if err := dot(dc, s/2, s*v, s*0.03); err != nil {
			return err
		}
	}
	return nil
}

func paintHead(dc *gg.Context, s float64) error {
	snowField(dc, s)
	for _, u := range []float64{0.42, 0.58} {
		if err := dot(dc, s*u, s*0.22, s*0.03); err != nil {
			return err
		}
	}
	// Coal smile below the nose.
	for i := 0; i < 5; i++ {
		u := 0.42 + float64(i)*0.04
		v := 0.09 - 0.02*gomath.Sin(float64(i)*gomath.Pi/4)
		if err := dot(dc, s*u, s*v, s*0.015); err != nil {
			return err
		}
	}
	return nil
}

func paintIce(dc *gg.Context, s float64) error {
	dc.SetFillBrush(gg.NewLinearGradientBrush(0, 0, s, s).
		AddColorStop(0, iceLight).
		AddColorStop(0.5, iceDeep).
		AddColorStop(1, iceLight))
	dc.DrawRectangle(0, 0, s, s)
	if err := dc.Fill(); err != nil {
		return err
	}

	// Skate scratches.
	dc.SetRGBA(1, 1, 1, 0.5)
	dc.SetLineWidth(s / 256)
	for i := 0; i < 12; i++ {
		a := float64(i) * 0.7
		x, y := s*(0.1+0.07*float64(i)), s*(0.2+0.05*float64(i%5))
		dc.DrawLine(x, y, x+gomath.Cos(a)*s*0.3, y+gomath.Sin(a)*s*0.3)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// paintShore shades the slope from the ice edge (v = 0) up to the flat
// snow field.
func paintShore(dc *gg.Context, s float64) error {
	dc.SetFillBrush(gg.NewLinearGradientBrush(0, 0, 0, s).
		AddColorStop(0, snowShade).
		AddColorStop(0.3, snowWhite).
		AddColorStop(1, snowWhite))
	dc.DrawRectangle(0, 0, s, s)
	return dc.Fill()
}

// paintHills draws a row of snowy ridges against the sky. The bottom of the
// texture meets the snow field, the top fades to the sky color.
func paintHills(dc *gg.Context, s float64) error {
	dc.ClearWithColor(gg.RGB(0.53, 0.81, 0.92))

	dc.SetFillBrush(gg.Solid(gg.RGB(0.78, 0.84, 0.93)))
	ridge(dc, s, 0.45, 3)
	if err := dc.Fill(); err != nil {
		return err
	}
	dc.SetFillBrush(gg.Solid(snowWhite))
	ridge(dc, s, 0.6, 5)
	return dc.Fill()
}

// ridge traces a closed wavy band from height top down to the bottom edge.
// waves must be whole so the texture tiles horizontally.
func ridge(dc *gg.Context, s, top float64, waves int) {
	dc.MoveTo(0, s)
	const steps = 64
	for i := 0; i <= steps; i++ {
		x := float64(i) / steps
		y := top + 0.08*gomath.Sin(x*float64(waves)*2*gomath.Pi)
		dc.LineTo(x*s, (1-y)*s)
	}
	dc.LineTo(s, s)
	dc.ClosePath()
}

// paintTrees draws a disc of needles with an ink polygon on the rim. The
// skirt fans map their rim vertices to (0.5+sin/2, 0.5+cos/2), so the ink
// lines trace exactly the skirt edges.
func paintTrees(dc *gg.Context, s float64, edges int) error {
	dc.ClearWithColor(needleDark)

	dc.SetFillBrush(gg.NewRadialGradientBrush(s/2, s/2, 0, s/2).
		AddColorStop(0, needleLite).
		AddColorStop(1, needleDark))
	dc.DrawCircle(s/2, s/2, s/2)
	if err := dc.Fill(); err != nil {
		return err
	}

	// Snow on the needles.
	dc.SetRGBA(1, 1, 1, 0.8)
	for i := 0; i < 24; i++ {
		a := float64(i) * 2 * gomath.Pi / 24
		r := s * (0.15 + 0.1*float64(i%3))
		dc.DrawEllipse(s/2+gomath.Sin(a)*r, s/2+gomath.Cos(a)*r, s*0.04, s*0.02)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	dc.SetFillBrush(gg.Solid(coal))
	dc.SetLineWidth(TreeOutlineWidth * s / 512)
	at := func(n float64) float64 { return (n + 1) * s / 2 }
	for i := 0; i < edges; i++ {
		a0 := 2 * gomath.Pi * float64(i) / float64(edges)
		a1 := 2 * gomath.Pi * float64(i+1) / float64(edges)
		dc.DrawLine(at(gomath.Sin(a0)), at(gomath.Cos(a0)), at(gomath.Sin(a1)), at(gomath.Cos(a1)))
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
