package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPaint(t *testing.T) {
	set, err := Paint(64, 16)
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	if err := set.Validate(); err != nil {
		t.Fatalf("painted set invalid: %v", err)
	}
	for _, n := range Names {
		if b := set[n].Bounds(); b.Dx() != 64 || b.Dy() != 64 {
			t.Errorf("%s: expected 64x64, got %dx%d", n, b.Dx(), b.Dy())
		}
	}
}

func TestPaintHeadHasEyes(t *testing.T) {
	const size = 256
	set, err := Paint(size, 16)
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	eye := set[Head].RGBAAt(int(size*0.42), int(size*0.22))
	if eye.R > 60 || eye.G > 60 || eye.B > 60 {
		t.Errorf("expected a coal eye, got %v", eye)
	}
	cheek := set[Head].RGBAAt(size/2, size/2)
	if cheek.R < 200 {
		t.Errorf("expected snow at the crown, got %v", cheek)
	}
}

func TestPaintInvalid(t *testing.T) {
	if _, err := Paint(4, 16); err == nil {
		t.Error("expected error for tiny textures")
	}
	if _, err := Paint(64, 2); err == nil {
		t.Error("expected error for a two-edge tree outline")
	}
}

func TestValidateMissing(t *testing.T) {
	set := Set{Ice: image.NewRGBA(image.Rect(0, 0, 8, 8))}
	err := set.Validate()
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestValidateNotSquare(t *testing.T) {
	set, err := Paint(16, 16)
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	set[Shore] = image.NewRGBA(image.Rect(0, 0, 16, 8))
	if err := set.Validate(); err == nil {
		t.Error("expected error for a non-square texture")
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()

	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	src.SetRGBA(0, 0, color.RGBA{R: 0xff, A: 0xff})
	f, err := os.Create(filepath.Join(dir, "ice.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Paint(32, 16)
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	before := set[Shore]

	replaced, err := LoadOverrides(dir, 32, set)
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}
	if len(replaced) != 1 || replaced[0] != Ice {
		t.Fatalf("expected [ice] replaced, got %v", replaced)
	}
	if b := set[Ice].Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("expected override scaled to 32x32, got %dx%d", b.Dx(), b.Dy())
	}
	if set[Shore] != before {
		t.Error("expected shore texture untouched")
	}
}

func TestLoadOverridesBadImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "trees.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := Paint(16, 16)
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	if _, err := LoadOverrides(dir, 16, set); err == nil {
		t.Error("expected decode error")
	}
}

func TestSaveDir(t *testing.T) {
	set, err := Paint(16, 16)
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "out")
	if err := SaveDir(dir, set); err != nil {
		t.Fatalf("SaveDir failed: %v", err)
	}
	for _, n := range Names {
		if _, err := os.Stat(filepath.Join(dir, string(n)+".png")); err != nil {
			t.Errorf("expected %s.png: %v", n, err)
		}
	}

	// Saved textures load back as overrides.
	again, err := Paint(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	replaced, err := LoadOverrides(dir, 16, again)
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}
	if len(replaced) != len(Names) {
		t.Errorf("expected %d overrides, got %d", len(Names), len(replaced))
	}
}

func TestResizeKeepsMatchingSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if got := Resize(img, 8); got != img {
		t.Error("expected Resize to return the same image when sizes match")
	}
}
