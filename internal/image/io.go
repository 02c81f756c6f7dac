package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG for Decode
	_ "image/png"  // register PNG for Decode
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// I/O errors.
var (
	// ErrDecode is returned when the input cannot be decoded as an image.
	ErrDecode = errors.New("image: decode")

	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// Load opens the file at path and decodes it into a Grid.
// BMP, PNG and JPEG are recognized by content.
func Load(path string) (*Grid, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(bufio.NewReader(f))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	g := FromStdImage(img)
	if g == nil {
		return nil, ErrEmptyImage
	}
	return g, nil
}

// DecodeBMP decodes a BMP image from r.
func DecodeBMP(r io.Reader) (*Grid, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: BMP: %w", ErrDecode, err)
	}
	g := FromStdImage(img)
	if g == nil {
		return nil, ErrEmptyImage
	}
	return g, nil
}

// FromStdImage copies the color channels of img into a new Grid.
// Alpha is dropped. Returns nil for an empty image.
func FromStdImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g, err := NewGrid(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil
	}

	// Fast path for opaque RGBA, which is what the BMP decoder
	// returns for 24-bit files.
	if rgba, ok := img.(*image.RGBA); ok && rgba.Opaque() {
		for y := range g.height {
			row := rgba.Pix[y*rgba.Stride:]
			dst := g.pix[y*g.width : (y+1)*g.width]
			for x := range dst {
				dst[x] = RGB{R: row[x*4], G: row[x*4+1], B: row[x*4+2]}
			}
		}
		return g
	}

	// Fast path for NRGBA (32-bit BMP, most PNG files).
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range g.height {
			row := nrgba.Pix[y*nrgba.Stride:]
			dst := g.pix[y*g.width : (y+1)*g.width]
			for x := range dst {
				dst[x] = RGB{R: row[x*4], G: row[x*4+1], B: row[x*4+2]}
			}
		}
		return g
	}

	for y := range g.height {
		for x := range g.width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			g.pix[g.Index(x, y)] = RGB{R: c.R, G: c.G, B: c.B}
		}
	}
	return g
}

// ToStdImage converts the grid to an opaque *image.RGBA.
func (g *Grid) ToStdImage() *image.RGBA {
	img := image.NewRGBA(g.Bounds())
	for y := range g.height {
		row := img.Pix[y*img.Stride:]
		for x, c := range g.pix[y*g.width : (y+1)*g.width] {
			off := x * 4
			row[off] = c.R
			row[off+1] = c.G
			row[off+2] = c.B
			row[off+3] = 255 // Opaque
		}
	}
	return img
}

// EncodeBMP encodes the grid as a 24-bit BMP to w.
func (g *Grid) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, g.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode BMP: %w", err)
	}
	return nil
}

// SaveBMP writes the grid to path as a BMP file.
//
// The image is encoded into a temporary file next to path and renamed
// into place, so path is either the complete new image or untouched.
func (g *Grid) SaveBMP(path string) error {
	path = filepath.Clean(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), ".perflab-*.bmp")
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	bw := bufio.NewWriter(tmp)
	if err := g.EncodeBMP(bw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("image: write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}
	// CreateTemp uses 0600; match what os.Create would have produced.
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // output image is not secret
		return fmt.Errorf("image: chmod file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("image: rename file: %w", err)
	}
	return nil
}
