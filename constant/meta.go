// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Hexvar is the canonical application identifier used for filesystem paths and CLI branding.
	Hexvar = "hexvar"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata - overridden by ldflags at release time.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
