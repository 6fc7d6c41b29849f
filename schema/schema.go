// Package schema has models, constants and formatting helpers for all parts of techdebt.
package schema

// RepositoryInput is one repository document as decoded from the upstream
// analyser output. Pointer fields stay nil when the key is absent so that
// validation can tell "missing" apart from "zero".
type RepositoryInput struct {
	Repo                 *string    `json:"repo"`
	TotalCommitsAnalyzed *int       `json:"total_commits_analyzed"`
	Eras                 []EraInput `json:"eras"` // Absent or null means no eras

	// LoadErr is set by the loader when this entry of a multi-repository
	// document could not be decoded. The entry keeps its position.
	LoadErr error `json:"-"`
}

// EraInput is one era of a RepositoryInput before validation.
type EraInput struct {
	EraIndex     *int            `json:"era_index"`
	CommitsInEra *int            `json:"commits_in_era"`
	ResetCommit  *string         `json:"reset_commit"` // Absent for the first era
	Nodes        *[]FileEraInput `json:"nodes"`
}

// FileEraInput is one file record of an EraInput before validation.
type FileEraInput struct {
	Path        *string  `json:"path"`
	CommitCount *int     `json:"commit_count"`
	Additions   *float64 `json:"additions"`
	Deletions   *float64 `json:"deletions"`
}

// FileEraRecord is one file's activity within one era.
type FileEraRecord struct {
	Path        string  `json:"path"`         // File path at the time of the era
	CommitCount int     `json:"commit_count"` // Commits touching the file within the era
	Additions   float64 `json:"additions"`    // Lines added (absent input coerces to 0)
	Deletions   float64 `json:"deletions"`    // Lines deleted (absent input coerces to 0)
}

// Era is a validated, contiguous slice of a repository's commit history.
type Era struct {
	EraIndex     int
	CommitsInEra int     // Denominator for commit percentages
	ResetCommit  *string // Commit that started the era, nil for the first era
	Nodes        []FileEraRecord
}

// Thresholds holds the two percentage cut-offs used for classification.
// It is passed by value so a run can never observe it changing.
type Thresholds struct {
	CommitPct float64 `json:"commit_pct_threshold"` // Share of an era's commits
	ChurnPct  float64 `json:"churn_pct_threshold"`  // Share of an era's total churn
}

// DefaultThresholds returns the stock thresholds: 5% of commits, 1% of churn.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CommitPct: DefaultCommitPctThreshold,
		ChurnPct:  DefaultChurnPctThreshold,
	}
}
