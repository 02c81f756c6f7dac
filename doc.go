// Package perflab applies a named 3x3 convolution filter to a bitmap image.
//
// # Overview
//
// perflab loads an image, convolves it with one of a fixed set of integer
// kernels, writes the result as BMP and reports how long the convolution
// took per pixel. It is a small, sequential reference for measuring the
// cost of a straightforward filter loop.
//
// # Quick Start
//
//	import "github.com/gogpu/perflab"
//
//	res, err := perflab.Process("gauss", "input.bmp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.2f ns/pixel\n", res.NanosPerPixel())
//
// # Filters
//
// Three kernels are registered:
//   - gauss: 3x3 blur, weights {0,4,0, 4,8,4, 0,4,0} / 24
//   - vline: vertical edge detector {-1,0,1, -2,0,2, -1,0,1}
//   - hline: horizontal edge detector {-1,-2,-1, 0,0,0, 1,2,1}
//
// An unknown filter name is an error (ErrUnknownFilter) reported before
// the input is read. Earlier versions of this tool silently used an
// all-zero kernel with divisor 0, which faulted mid-run.
//
// # Borders
//
// Only interior pixels are filtered. The outermost row and column on
// every side of the output are left black. This matches the original
// tool; it is an edge effect rather than deliberate visual behavior.
//
// # Architecture
//
// The module is organized into:
//   - Public API: Process, Result, SetLogger
//   - internal/filter: Kernel, named kernels, the convolution engine
//   - internal/image: RGB Grid buffer and BMP/PNG/JPEG codec
//   - internal/report: stopwatch and latency line
//   - cmd/perflab: command line tool
package perflab
