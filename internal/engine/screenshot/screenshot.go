// Package screenshot saves rendered frames as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes numbered, timestamped screenshots into a directory.
type Capture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	count     int
}

// New creates a capture handler. An empty outputDir means the working
// directory.
func New(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// FromPixels converts bottom-up RGBA rows, as OpenGL reads them, into an
// image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save encodes img and returns the file it was written to.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return filename, nil
}

// nextFilename numbers captures so two in the same second do not collide.
func (c *Capture) nextFilename() string {
	c.count++
	timestamp := c.now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s_%03d.png", c.prefix, timestamp, c.count)
	if c.outputDir != "" {
		name = filepath.Join(c.outputDir, name)
	}
	return name
}
