package perflab

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/perflab/internal/filter"
	"github.com/gogpu/perflab/internal/image"
	"github.com/gogpu/perflab/internal/report"
)

// DefaultOutputPath is where Process writes the filtered image.
const DefaultOutputPath = "output.bmp"

// Pipeline errors. Each is wrapped with the offending name or path.
var (
	// ErrUnknownFilter is returned when the filter name is not registered.
	ErrUnknownFilter = filter.ErrUnknownFilter

	// ErrLoad is returned when the input image cannot be read or decoded.
	ErrLoad = errors.New("perflab: load image")

	// ErrSave is returned when the output image cannot be written.
	ErrSave = errors.New("perflab: save image")
)

// Result describes a completed Process call.
type Result struct {
	Filter     string
	Width      int
	Height     int
	Elapsed    time.Duration
	OutputPath string
}

// NanosPerPixel returns the filter time divided by the image pixel count.
func (r *Result) NanosPerPixel() float64 {
	return r.Timing().NanosPerPixel()
}

// Timing returns the measurement in the form used by the report printer.
func (r *Result) Timing() report.Timing {
	return report.Timing{Width: r.Width, Height: r.Height, Elapsed: r.Elapsed}
}

// Process filters the image at inputPath with the named kernel and
// writes the result as BMP.
//
// The filter name is resolved before the input is opened, so an unknown
// name performs no I/O. A load failure writes nothing. Only the
// convolution itself is timed.
func Process(filterName, inputPath string, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := Logger()

	k, err := filter.Lookup(filterName)
	if err != nil {
		return nil, err
	}
	log.Debug("perflab: kernel selected", "filter", filterName, "kernel", k.String())

	input, err := image.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrLoad, inputPath, err)
	}
	log.Debug("perflab: image loaded", "path", inputPath,
		"width", input.Width(), "height", input.Height())

	sw := report.Start()
	output := filter.Apply(input, k)
	elapsed := sw.Elapsed()

	res := &Result{
		Filter:     filterName,
		Width:      input.Width(),
		Height:     input.Height(),
		Elapsed:    elapsed,
		OutputPath: o.outputPath,
	}
	log.Debug("perflab: filter applied", "elapsed", elapsed, "ns_per_pixel", res.NanosPerPixel())

	if err := output.SaveBMP(o.outputPath); err != nil {
		return nil, fmt.Errorf("%w to %s: %w", ErrSave, o.outputPath, err)
	}
	log.Info("perflab: output written", "path", o.outputPath)

	return res, nil
}
