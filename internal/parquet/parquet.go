// Package parquet provides data structures and functions for exporting tech-debt
// findings to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/techdebt/schema"
	"github.com/parquet-go/parquet-go"
)

// FindingRow is one flagged file in one era of one repository, flattened
// for columnar storage.
type FindingRow struct {
	// RepoLabel is the positional label of the repository (repo_1, repo_2, ...)
	RepoLabel string `parquet:"repo_label,snappy,dict"`

	// RepoName is the repository name from the input document
	RepoName string `parquet:"repo_name,snappy,dict"`

	// EraIndex is the index of the era as given in the input
	EraIndex int32 `parquet:"era_index,snappy"`

	// EraCommits is the number of commits in the era
	EraCommits int32 `parquet:"era_commits,snappy"`

	// ResetCommit is the commit that started the era (nullable for the first era)
	ResetCommit *string `parquet:"reset_commit,optional,snappy"`

	// Path is the file path within the era
	Path string `parquet:"path,snappy"`

	// CommitCount is the number of era commits touching the file
	CommitCount int32 `parquet:"commit_count,snappy"`

	Additions float64 `parquet:"additions,snappy"`
	Deletions float64 `parquet:"deletions,snappy"`
	CodeChurn float64 `parquet:"code_churn,snappy"`

	// CommitPercentage is the file's share of the era's commits
	CommitPercentage float64 `parquet:"commit_percentage,snappy"`

	// CodeChurnPercentage is the file's share of the era's churn
	CodeChurnPercentage float64 `parquet:"code_churn_percentage,snappy"`

	// Reasons holds the formatted reasons, e.g. "high_churn (99.0%)"
	Reasons []string `parquet:"reasons,list"`
}

// FindingRowsFromReport flattens every finding of every repository in report order.
func FindingRowsFromReport(report schema.TechDebtReport) []FindingRow {
	rows := make([]FindingRow, 0, report.TotalFindings())
	for _, repo := range report.Repositories {
		for _, f := range repo.HighDebtFiles {
			reasons := make([]string, len(f.Reasons))
			for i, r := range f.Reasons {
				reasons[i] = schema.FormatReason(r)
			}
			rows = append(rows, FindingRow{
				RepoLabel:           repo.RepoLabel,
				RepoName:            repo.RepoName,
				EraIndex:            int32(f.EraIndex),
				EraCommits:          int32(f.EraCommits),
				ResetCommit:         f.ResetCommit,
				Path:                f.Path,
				CommitCount:         int32(f.CommitCount),
				Additions:           f.Additions,
				Deletions:           f.Deletions,
				CodeChurn:           f.CodeChurn,
				CommitPercentage:    f.CommitPercentage,
				CodeChurnPercentage: f.CodeChurnPercentage,
				Reasons:             reasons,
			})
		}
	}
	return rows
}

// WriteFindings writes rows to w as a single Parquet file.
func WriteFindings(w io.Writer, rows []FindingRow) error {
	// The schema is derived from the FindingRow struct tags
	writer := parquet.NewGenericWriter[FindingRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteFindingsParquet writes rows to a Parquet file at outputPath.
func WriteFindingsParquet(rows []FindingRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return WriteFindings(file, rows)
}
