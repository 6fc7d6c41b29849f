package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/techdebt/internal/contract"
	"github.com/huangsam/techdebt/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedDoc = `[
  {"repo": "org/app", "total_commits_analyzed": 100, "eras": [
    {"era_index": 0, "commits_in_era": 100, "nodes": [
      {"path": "a.py", "commit_count": 6, "additions": 10, "deletions": 0},
      {"path": "b.py", "commit_count": 1, "additions": 990, "deletions": 0}
    ]}
  ]},
  {"repo": "org/broken", "eras": []}
]`

// writeDoc writes a document to a temp file and returns its path.
func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func reportConfig(t *testing.T, inputPath string) *contract.Config {
	return &contract.Config{
		InputPath:  inputPath,
		Thresholds: schema.DefaultThresholds(),
		Output:     schema.JSONOut,
		OutputFile: filepath.Join(t.TempDir(), "tech_debt_report.json"),
		Precision:  1,
		Width:      200,
	}
}

func TestExecuteTechDebtReport(t *testing.T) {
	cfg := reportConfig(t, writeDoc(t, mixedDoc))

	require.NoError(t, ExecuteTechDebtReport(WithSuppressHeader(context.Background()), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"repo_label": "repo_1"`)
	assert.Contains(t, string(data), `"high_churn (99.0%)"`)
	assert.NotContains(t, string(data), "org/broken")
}

func TestExecuteTechDebtReportStrict(t *testing.T) {
	cfg := reportConfig(t, writeDoc(t, mixedDoc))
	cfg.Strict = true

	err := ExecuteTechDebtReport(WithSuppressHeader(context.Background()), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrMissingInput))

	// The document is still written before the strict failure
	_, statErr := os.Stat(cfg.OutputFile)
	assert.NoError(t, statErr)
}

func TestExecuteTechDebtReportNoInput(t *testing.T) {
	cfg := reportConfig(t, "")
	err := ExecuteTechDebtReport(WithSuppressHeader(context.Background()), cfg)
	assert.True(t, errors.Is(err, schema.ErrMissingInput))
}

func TestExecuteTechDebtReportCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(WithSuppressHeader(context.Background()))
	cancel()
	err := ExecuteTechDebtReport(ctx, reportConfig(t, writeDoc(t, mixedDoc)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetTechDebtReport(t *testing.T) {
	path := writeDoc(t, mixedDoc)

	report, err := GetTechDebtReport(context.Background(), path, schema.DefaultThresholds())
	require.Error(t, err)
	require.Len(t, report.Repositories, 1)
	assert.Equal(t, 2, report.TotalFindings())

	report, err = GetTechDebtReport(context.Background(), path, schema.Thresholds{CommitPct: 100, ChurnPct: 100})
	require.Error(t, err)
	assert.Equal(t, 0, report.TotalFindings())

	_, err = GetTechDebtReport(context.Background(), "", schema.DefaultThresholds())
	assert.True(t, errors.Is(err, schema.ErrMissingInput))

	_, err = GetTechDebtReport(context.Background(), writeDoc(t, ""), schema.DefaultThresholds())
	assert.True(t, errors.Is(err, schema.ErrMissingInput))
}

func TestSplitErrors(t *testing.T) {
	assert.Nil(t, splitErrors(nil))

	single := errors.New("one")
	assert.Equal(t, []error{single}, splitErrors(single))

	other := errors.New("two")
	assert.Equal(t, []error{single, other}, splitErrors(errors.Join(single, other)))
}

func TestStrictError(t *testing.T) {
	skipped := []error{errors.New("bad")}
	assert.NoError(t, strictError(&contract.Config{}, skipped))
	assert.NoError(t, strictError(&contract.Config{Strict: true}, nil))
	assert.EqualError(t, strictError(&contract.Config{Strict: true}, skipped), "1 repositories could not be classified: bad")
}

func TestBuildCriteriaRenderModel(t *testing.T) {
	model := BuildCriteriaRenderModel(schema.Thresholds{CommitPct: 7, ChurnPct: 3})
	require.Len(t, model.Criteria, 2)
	assert.Equal(t, schema.HighCommits, model.Criteria[0].Reason)
	assert.Equal(t, 7.0, model.Criteria[0].Threshold)
	assert.Equal(t, schema.HighChurn, model.Criteria[1].Reason)
	assert.Equal(t, 3.0, model.Criteria[1].Threshold)
	assert.NotEmpty(t, model.Notes)
}

func TestExecuteTechDebtCriteria(t *testing.T) {
	cfg := &contract.Config{Thresholds: schema.DefaultThresholds(), Format: schema.JSONOut, Precision: 1}
	assert.NoError(t, ExecuteTechDebtCriteria(context.Background(), cfg))
}
