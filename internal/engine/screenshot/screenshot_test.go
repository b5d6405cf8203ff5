package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromPixelsFlipsRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue, as GL returns them.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FromPixels failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("expected blue on top, got %v", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected red at the bottom, got %v", got)
	}
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	if _, err := FromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected error for short pixel data")
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "snowmen")
	c.now = func() time.Time { return time.Date(2024, 12, 24, 18, 30, 0, 0, time.UTC) }

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	first, err := c.Save(img)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := c.Save(img)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if want := filepath.Join(dir, "snowmen_2024-12-24_18-30-00_001.png"); first != want {
		t.Errorf("expected %s, got %s", want, first)
	}
	if first == second {
		t.Error("expected distinct names for captures in the same second")
	}

	f, err := os.Open(second)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding saved PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("expected 4x3, got %dx%d", b.Dx(), b.Dy())
	}
}
