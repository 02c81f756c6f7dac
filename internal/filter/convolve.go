package filter

import (
	"errors"

	"github.com/gogpu/perflab/internal/image"
)

// ErrZeroDivisor is returned by ApplyChecked for a kernel with divisor 0.
var ErrZeroDivisor = errors.New("filter: zero divisor")

// Apply convolves input with k and returns a new grid of the same size.
//
// Only interior pixels (1 <= x <= w-2, 1 <= y <= h-2) are computed.
// Border pixels of the result are left Black. Grids with width or
// height of 2 or less come back entirely Black. input is not modified.
//
// k.Divisor must be nonzero; Apply panics with a runtime division
// error otherwise. Use ApplyChecked when the kernel is not trusted.
func Apply(input *image.Grid, k Kernel) *image.Grid {
	w, h := input.Width(), input.Height()
	out := image.MustNewGrid(w, h)

	src := input.Pix()
	dst := out.Pix()

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var rTotal, gTotal, bTotal int32
			for i := 0; i < KernelSize; i++ {
				row := (y+i-1)*w + x - 1
				for j := 0; j < KernelSize; j++ {
					p := src[row+j]
					v := k.Values[i*KernelSize+j]
					rTotal += int32(p.R) * v
					gTotal += int32(p.G) * v
					bTotal += int32(p.B) * v
				}
			}

			// Go integer division truncates toward zero.
			dst[y*w+x] = image.RGB{
				R: clamp255(rTotal / k.Divisor),
				G: clamp255(gTotal / k.Divisor),
				B: clamp255(bTotal / k.Divisor),
			}
		}
	}

	return out
}

// ApplyChecked is like Apply but rejects a kernel with a zero divisor.
func ApplyChecked(input *image.Grid, k Kernel) (*image.Grid, error) {
	if !k.Valid() {
		return nil, ErrZeroDivisor
	}
	return Apply(input, k), nil
}

// clamp255 clamps v to [0, 255].
func clamp255(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
