package schema

import (
	"encoding/json"
	"fmt"
)

// EraStatRow is one row of an era statistics table: the file record plus
// its derived metrics.
type EraStatRow struct {
	FileEraRecord
	CodeChurn           float64 `json:"code_churn"`            // Additions + deletions
	CommitPercentage    float64 `json:"commit_percentage"`     // CommitCount / commits_in_era * 100
	CodeChurnPercentage float64 `json:"code_churn_percentage"` // CodeChurn / era total churn * 100
}

// Reason is a tagged variant naming the criterion that flagged a file and
// the percentage that met it, rounded to one decimal place.
type Reason struct {
	Kind  ReasonKind
	Value float64
}

// String renders the reason as "high_churn (99.0%)".
func (r Reason) String() string {
	return FormatReason(r)
}

// MarshalJSON encodes the reason in its string form.
func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatReason(r))
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (r *Reason) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseReason(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// DebtFinding is one flagged file within one era.
type DebtFinding struct {
	EraStatRow
	Reasons []Reason `json:"reasons"`
}

// HasReason reports whether the finding was flagged for the given kind.
func (f DebtFinding) HasReason(kind ReasonKind) bool {
	for _, r := range f.Reasons {
		if r.Kind == kind {
			return true
		}
	}
	return false
}

// EraResult holds the findings of one era that produced at least one finding.
type EraResult struct {
	EraIndex     int
	CommitsInEra int
	ResetCommit  *string
	Findings     []DebtFinding
}

// Label returns a short human label for the era, e.g. "Era 2 (40 commits)".
func (e EraResult) Label() string {
	return fmt.Sprintf("Era %d (%d commits)", e.EraIndex, e.CommitsInEra)
}

// EraDebtRecord is a DebtFinding annotated with its originating era.
type EraDebtRecord struct {
	EraIndex    int     `json:"era_index"`
	EraCommits  int     `json:"era_commits"`
	ResetCommit *string `json:"reset_commit"`
	DebtFinding
}

// RepoSummary is the per-repository entry of a TechDebtReport.
type RepoSummary struct {
	RepoLabel     string          `json:"repo_label"` // Positional label, repo_1 based
	RepoName      string          `json:"repo_name"`
	TotalCommits  int             `json:"total_commits"` // Reported as-is, never a denominator
	NumEras       int             `json:"num_eras"`      // All eras in the input, flagged or not
	EraBased      bool            `json:"era_based"`
	HighDebtFiles []EraDebtRecord `json:"high_debt_files"`
	Eras          []EraResult     `json:"-"` // Retained eras for console rendering
}

// FindingCount returns the number of flagged file entries across all eras.
func (s RepoSummary) FindingCount() int {
	return len(s.HighDebtFiles)
}

// TechDebtReport is the output of one aggregation run.
type TechDebtReport struct {
	Thresholds   Thresholds
	Repositories []RepoSummary
}

// TotalFindings returns the number of flagged file entries across all repositories.
func (r TechDebtReport) TotalFindings() int {
	total := 0
	for _, s := range r.Repositories {
		total += s.FindingCount()
	}
	return total
}
