package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"

	"github.com/Faultbox/snowmen/internal/logger"
)

var overrideExts = []string{".png", ".jpg", ".jpeg", ".bmp"}

// LoadOverrides replaces textures in set with images found in dir. A file
// named after a texture (for example "ice.png") replaces it; other files are
// ignored. Images are scaled to size x size. It returns the names replaced.
func LoadOverrides(dir string, size int, set Set) ([]Name, error) {
	var replaced []Name
	for _, n := range Names {
		path, ok := findOverride(dir, n)
		if !ok {
			continue
		}
		img, err := decodeFile(path)
		if err != nil {
			return replaced, fmt.Errorf("loading %s override: %w", n, err)
		}
		set[n] = Resize(img, size)
		replaced = append(replaced, n)
		logger.Debug("texture override", zap.String("name", string(n)), zap.String("path", path))
	}
	return replaced, nil
}

func findOverride(dir string, n Name) (string, bool) {
	for _, ext := range overrideExts {
		path := filepath.Join(dir, string(n)+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		} else if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("cannot stat texture override", zap.String("path", path), zap.Error(err))
		}
	}
	return "", false
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Resize scales img to a size x size RGBA image.
func Resize(img image.Image, size int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return toRGBA(img)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SaveDir writes every texture in set to dir as name.png.
func SaveDir(dir string, set Set) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for _, n := range set.Sorted() {
		if err := savePNG(filepath.Join(dir, string(n)+".png"), set[n]); err != nil {
			return err
		}
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
