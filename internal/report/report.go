// Package report measures filter runs and prints the per-pixel latency line.
package report

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stopwatch measures wall time from Start.
type Stopwatch struct {
	now   func() time.Time
	start time.Time
}

// Start returns a running stopwatch.
func Start() *Stopwatch {
	return startWith(time.Now)
}

func startWith(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now, start: now()}
}

// Elapsed returns the time since the stopwatch was started.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}

// Timing is the measurement of one filter run.
type Timing struct {
	Width   int
	Height  int
	Elapsed time.Duration
}

// Pixels returns the number of pixels in the measured image.
func (t Timing) Pixels() int {
	return t.Width * t.Height
}

// NanosPerPixel returns the elapsed time divided by the pixel count.
func (t Timing) NanosPerPixel() float64 {
	return NanosPerPixel(t.Elapsed, t.Width, t.Height)
}

// NanosPerPixel returns elapsed nanoseconds per pixel of a width x height
// image. An empty image yields 0.
func NanosPerPixel(elapsed time.Duration, width, height int) float64 {
	n := width * height
	if n <= 0 {
		return 0
	}
	return float64(elapsed.Nanoseconds()) / float64(n)
}

// Fprint writes the latency line for t to w.
func Fprint(w io.Writer, t Timing) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "Processing the image took around %.2f nanoseconds per pixel.\n", t.NanosPerPixel())
	return err
}
