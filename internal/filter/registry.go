package filter

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/cases"
)

// ErrUnknownFilter is returned by Lookup for a name with no registered kernel.
var ErrUnknownFilter = errors.New("filter: unknown filter")

// Named kernels.
var (
	// Gauss is a 3x3 Gaussian-like blur. Its weights sum to its divisor.
	Gauss = Kernel{Divisor: 24, Values: [9]int32{0, 4, 0, 4, 8, 4, 0, 4, 0}}

	// VLine is a Sobel operator that responds to vertical edges.
	VLine = Kernel{Divisor: 1, Values: [9]int32{-1, 0, 1, -2, 0, 2, -1, 0, 1}}

	// HLine is a Sobel operator that responds to horizontal edges.
	HLine = Kernel{Divisor: 1, Values: [9]int32{-1, -2, -1, 0, 0, 0, 1, 2, 1}}
)

// registry maps folded filter names to kernels. Built once, never written.
var registry = map[string]Kernel{
	"gauss": Gauss,
	"vline": VLine,
	"hline": HLine,
}

// Lookup returns the kernel registered under name.
// Names are matched case-insensitively. Unknown names yield an error
// wrapping ErrUnknownFilter, never a zero kernel.
func Lookup(name string) (Kernel, error) {
	// A Caser is stateful, so one is made per call.
	k, ok := registry[cases.Fold().String(name)]
	if !ok {
		return Kernel{}, fmt.Errorf("%w %q", ErrUnknownFilter, name)
	}
	return k, nil
}

// Names returns the registered filter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
