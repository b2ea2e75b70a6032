// Package settings holds build metadata and the resolved options of a single
// gamecat invocation, plus helpers to carry them through a context.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "gamecat"

// PreferenceSlot is the key under which user preferences are stored.
// It matches the slot name used by the browser build of the catalog.
const PreferenceSlot = "userSettings"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// OutputMode selects how the catalog is presented.
type OutputMode string

const (
	OutputTUI   OutputMode = "tui"
	OutputTable OutputMode = "table"
	OutputJSON  OutputMode = "json"
)

// ValidOutputModes lists the accepted --output values.
var ValidOutputModes = []OutputMode{OutputTUI, OutputTable, OutputJSON}

// IsValidOutputMode reports whether s names a known output mode.
func IsValidOutputMode(s string) bool {
	for _, m := range ValidOutputModes {
		if string(m) == s {
			return true
		}
	}
	return false
}

// Run holds the resolved settings for one execution of the application.
type Run struct {
	MinLogLevel int8
	LogFile     string
	Output      OutputMode
	NoColor     bool
	Width       int
}

// NewCliParams returns the defaults used before flags are applied.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Output:      OutputTUI,
		NoColor:     false,
	}
}
