package perflab

// Option configures a Process call.
type Option func(*options)

// options holds optional configuration for Process.
type options struct {
	outputPath string
}

// defaultOptions returns the default process options.
func defaultOptions() options {
	return options{
		outputPath: DefaultOutputPath,
	}
}

// WithOutputPath writes the filtered image to path instead of
// DefaultOutputPath. The perflab command does not expose this; it exists
// for library callers and tests.
func WithOutputPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.outputPath = path
		}
	}
}
