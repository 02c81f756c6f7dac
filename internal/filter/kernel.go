package filter

import "fmt"

// KernelSize is the side length of every kernel.
const KernelSize = 3

// Kernel is a 3x3 grid of integer weights with a divisor.
//
// Values are row-major: Values[i*3+j] is row i (vertical offset i-1)
// and column j (horizontal offset j-1). Kernels are plain values and
// are never modified after construction.
type Kernel struct {
	Divisor int32
	Values  [KernelSize * KernelSize]int32
}

// NewKernel creates a kernel from a divisor and nine row-major weights.
func NewKernel(divisor int32, values [KernelSize * KernelSize]int32) Kernel {
	return Kernel{Divisor: divisor, Values: values}
}

// Identity returns the kernel that reproduces its input at every interior pixel.
func Identity() Kernel {
	return Kernel{
		Divisor: 1,
		Values:  [9]int32{0, 0, 0, 0, 1, 0, 0, 0, 0},
	}
}

// At returns the weight at row i, column j.
func (k Kernel) At(i, j int) int32 {
	return k.Values[i*KernelSize+j]
}

// Valid reports whether the kernel can be applied.
// A zero divisor would fault during division.
func (k Kernel) Valid() bool {
	return k.Divisor != 0
}

// Sum returns the sum of all weights.
// A kernel whose sum equals its divisor preserves flat regions.
func (k Kernel) Sum() int32 {
	var s int32
	for _, v := range k.Values {
		s += v
	}
	return s
}

// String formats the kernel as three rows followed by the divisor.
func (k Kernel) String() string {
	v := k.Values
	return fmt.Sprintf("[%d %d %d; %d %d %d; %d %d %d] / %d",
		v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], k.Divisor)
}
