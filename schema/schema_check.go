package schema

// CheckResult holds the results of a findings budget check.
type CheckResult struct {
	Passed        bool
	MaxFindings   int
	TotalFindings int
	Thresholds    Thresholds
	Repositories  []CheckRepository
	FailedRepos   int // Repositories that could not be classified
}

// CheckRepository summarizes one repository for the check output.
type CheckRepository struct {
	Label       string
	Name        string
	ErasFlagged int
	Findings    int
	CommitHits  int     // Findings flagged for high commits
	ChurnHits   int     // Findings flagged for high churn
	TopFile     string  // Path with the highest churn among the findings
	TopChurn    float64 // Churn of TopFile
}
