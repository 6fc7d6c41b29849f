// Package contract provides configuration, validation and shared utilities for internal architecture.
package contract

import "github.com/huangsam/techdebt/schema"

// Default values for configuration.
const (
	DefaultPrecision   = 1
	DefaultMaxFindings = 0
	MaxPrecision       = 2
	DefaultReportStem  = "tech_debt_report"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// DefaultOutputFile returns the file a report is persisted to when no
// --output-file is given, e.g. tech_debt_report.csv for CSV output.
func DefaultOutputFile(mode schema.OutputMode) string {
	return DefaultReportStem + "." + string(mode)
}
