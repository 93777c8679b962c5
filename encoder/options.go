package encoder

// Options holds encoder settings. The zero value is ready to use. Neither
// Encode nor ToString takes an Options value, so no field changes their
// output.
type Options struct {
	// Indent is a prefix for comments in multi-rule dumps. No function in
	// this package reads it.
	Indent string
}

// DefaultOptions returns the zero-value Options.
func DefaultOptions() Options {
	return Options{}
}
