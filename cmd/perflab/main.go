// Command perflab applies a named 3x3 convolution filter to a bitmap image.
//
// Usage:
//
//	perflab [-v] <filter> <bmp file path>
//
// The filtered image is written to output.bmp in the working directory
// and the convolution time is printed in nanoseconds per pixel.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/perflab"
	"github.com/gogpu/perflab/internal/filter"
	"github.com/gogpu/perflab/internal/report"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("perflab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log pipeline steps to stderr")
	fs.Usage = func() { usage(stdout) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() < 2 {
		usage(stdout)
		return exitUsage
	}
	filterName, inputPath := fs.Arg(0), fs.Arg(1)

	if *verbose {
		perflab.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer perflab.SetLogger(nil)
	}

	res, err := perflab.Process(filterName, inputPath)
	switch {
	case errors.Is(err, perflab.ErrUnknownFilter):
		fmt.Fprintf(stdout, "Unknown filter %q (available: %s)\n",
			filterName, strings.Join(filter.Names(), ", "))
		return exitError
	case errors.Is(err, perflab.ErrLoad):
		fmt.Fprintf(stdout, "Failed to load image at %s: %v\n", inputPath, err)
		return exitError
	case err != nil:
		fmt.Fprintf(stdout, "Failed to save image: %v\n", err)
		return exitError
	}

	if err := report.Fprint(stdout, res.Timing()); err != nil {
		return exitError
	}
	return exitOK
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: perflab <filter> <bmp file path>")
	fmt.Fprintf(w, "Filters: %s\n", strings.Join(filter.Names(), ", "))
}
