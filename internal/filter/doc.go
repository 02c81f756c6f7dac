// Package filter implements the fixed 3x3 integer convolution used by perflab.
//
// The package contains:
//   - Kernel: nine row-major integer weights and a divisor
//   - A registry of named kernels (gauss, vline, hline)
//   - Apply: the convolution engine over an image.Grid
//
// Apply is a pure function of its inputs. It visits interior pixels
// only, sums in int32, divides with truncation toward zero and clamps
// to [0, 255]. Border pixels of the result keep the zero value of
// image.NewGrid.
package filter
