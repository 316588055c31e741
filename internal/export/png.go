// Package export writes rendered figures to disk.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG encodes img into dir/name, creating dir if needed.
func WritePNG(dir, name string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// FrameName formats the filename for frame i of an animation sequence.
func FrameName(i int) string {
	return fmt.Sprintf("out%04d.png", i)
}

// WriteFrame writes one animation frame into dir under its sequence
// number.
func WriteFrame(dir string, i int, img image.Image) (string, error) {
	return WritePNG(dir, FrameName(i), img)
}
