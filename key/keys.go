// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Scanner Traversal - these keys control which files are read during a scan.
const (
	ScanExtensions = "scan.extensions"
	ScanIgnore     = "scan.ignore"
)

// Perceptual Clustering - these keys tune the color deduplication engine.
const (
	ClusterThreshold     = "cluster.threshold"
	ClusterNameThreshold = "cluster.name_threshold"
)

// Canonical Naming - these keys shape the identifiers assigned to canonical groups.
const (
	NamerPrefix = "namer.prefix"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal presentation.
const (
	CliColored = "cli.colored"
)
