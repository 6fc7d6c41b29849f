package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the persisted report.
	OutputMode string

	// ReasonKind represents which criterion flagged a file.
	ReasonKind string
)

// All output modes supported.
const (
	JSONOut    OutputMode = "json" // default
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text"
	ParquetOut OutputMode = "parquet"
)

// All reason kinds, in attribution order.
const (
	HighCommits ReasonKind = "high_commits"
	HighChurn   ReasonKind = "high_churn"
)

// Default threshold values in percent.
const (
	DefaultCommitPctThreshold = 5.0
	DefaultChurnPctThreshold  = 1.0
)

// ValidOutputModes lists all valid persisted output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	JSONOut:    {},
	CSVOut:     {},
	TextOut:    {},
	ParquetOut: {},
}

// AllReasonKinds returns reason kinds in the order they are attributed.
var AllReasonKinds = []ReasonKind{HighCommits, HighChurn}
