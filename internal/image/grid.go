// Package image provides the pixel buffer and image codec for perflab.
//
// Grid is an explicit owned RGB buffer. It replaces get/set-pixel access
// on a decoded image object: the filter engine reads and writes plain
// row-major slices, and the codec converts to and from image.Image only
// at the file boundary.
package image

import (
	"errors"
	"image"
)

// Common errors for grid operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside grid bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// RGB is a single pixel with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Black is the zero pixel. NewGrid fills every pixel with it.
var Black = RGB{}

// Grid is a fixed-size row-major buffer of RGB pixels.
//
// A Grid owns its pixel slice. Width and height never change after
// creation. Grid is not safe for concurrent writes.
type Grid struct {
	pix    []RGB
	width  int
	height int
}

// NewGrid creates a grid of the given dimensions with every pixel set to Black.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		pix:    make([]RGB, width*height),
		width:  width,
		height: height,
	}, nil
}

// MustNewGrid is like NewGrid but panics on invalid dimensions.
// Intended for tests and for callers that already hold valid dimensions.
func MustNewGrid(width, height int) *Grid {
	g, err := NewGrid(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the width of the grid in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid in pixels.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the grid rectangle anchored at the origin.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// Pix returns the underlying pixel slice in row-major order.
// The slice aliases the grid; writes through it are visible to the grid.
func (g *Grid) Pix() []RGB {
	return g.pix
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index returns the offset of (x, y) in Pix. The caller guarantees
// that (x, y) is in bounds.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// At returns the pixel at (x, y), or Black if out of bounds.
func (g *Grid) At(x, y int) RGB {
	if !g.InBounds(x, y) {
		return Black
	}
	return g.pix[g.Index(x, y)]
}

// Set writes the pixel at (x, y). Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, c RGB) {
	if !g.InBounds(x, y) {
		return
	}
	g.pix[g.Index(x, y)] = c
}

// SetChecked writes the pixel at (x, y) and reports out of bounds writes.
func (g *Grid) SetChecked(x, y int, c RGB) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.pix[g.Index(x, y)] = c
	return nil
}

// Fill sets every pixel to c.
func (g *Grid) Fill(c RGB) {
	for i := range g.pix {
		g.pix[i] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	pix := make([]RGB, len(g.pix))
	copy(pix, g.pix)
	return &Grid{
		pix:    pix,
		width:  g.width,
		height: g.height,
	}
}
