package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKernelAtRowMajor(t *testing.T) {
	k := NewKernel(1, [9]int32{1, 2, 3, 4, 5, 6, 7, 8, 9})

	tests := []struct {
		i, j int
		want int32
	}{
		{0, 0, 1},
		{0, 2, 3},
		{1, 0, 4},
		{1, 1, 5},
		{2, 1, 8},
		{2, 2, 9},
	}

	for _, tt := range tests {
		if got := k.At(tt.i, tt.j); got != tt.want {
			t.Errorf("At(%d, %d) = %d, want %d", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestKernelValid(t *testing.T) {
	if (Kernel{}).Valid() {
		t.Error("zero Kernel reported valid")
	}
	if !Identity().Valid() {
		t.Error("Identity() reported invalid")
	}
}

func TestKernelSum(t *testing.T) {
	tests := []struct {
		name string
		k    Kernel
		want int32
	}{
		{"gauss", Gauss, 24},
		{"vline", VLine, 0},
		{"hline", HLine, 0},
		{"identity", Identity(), 1},
	}

	for _, tt := range tests {
		if got := tt.k.Sum(); got != tt.want {
			t.Errorf("%s Sum() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestKernelString(t *testing.T) {
	want := "[0 4 0; 4 8 4; 0 4 0] / 24"
	if got := Gauss.String(); got != want {
		t.Errorf("Gauss.String() = %q, want %q", got, want)
	}
}

func TestLookupNamedKernels(t *testing.T) {
	tests := []struct {
		name string
		want Kernel
	}{
		{"gauss", Kernel{Divisor: 24, Values: [9]int32{0, 4, 0, 4, 8, 4, 0, 4, 0}}},
		{"vline", Kernel{Divisor: 1, Values: [9]int32{-1, 0, 1, -2, 0, 2, -1, 0, 1}}},
		{"hline", Kernel{Divisor: 1, Values: [9]int32{-1, -2, -1, 0, 0, 0, 1, 2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lookup(%q) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestLookupFoldsCase(t *testing.T) {
	for _, name := range []string{"GAUSS", "Gauss", "vLine", "HLINE"} {
		k, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
			continue
		}
		if !k.Valid() {
			t.Errorf("Lookup(%q) returned invalid kernel", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"", "sharpen", "gauss ", "g"} {
		k, err := Lookup(name)
		if !errors.Is(err, ErrUnknownFilter) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownFilter", name, err)
		}
		if k != (Kernel{}) {
			t.Errorf("Lookup(%q) kernel = %v, want zero Kernel", name, k)
		}
	}
}

func TestNames(t *testing.T) {
	want := []string{"gauss", "hline", "vline"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
