// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// DefaultExtensions enumerates the file extensions eligible for hex literal extraction.
var DefaultExtensions = []string{"css", "scss", "sass", "vue", "astro", "svelte"}

// OutputDirs enumerates directory names that are always excluded from traversal.
// These hold generated or vendored artifacts and rewriting them is never safe.
var OutputDirs = []string{
	"node_modules",
	"dist",
	"build",
	"out",
	".next",
	".vercel",
	".cache",
	"coverage",
	"target",
}
