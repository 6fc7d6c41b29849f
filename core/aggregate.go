package core

import (
	"errors"
	"fmt"

	"github.com/huangsam/techdebt/schema"
)

// AggregateRepositories classifies every repository and assembles the report.
// Repositories are labelled repo_1..repo_n by input position, and a failed
// repository still consumes its label. Failures are skipped and returned
// joined so the caller can decide whether they are fatal; the report always
// holds every repository that succeeded.
func AggregateRepositories(repos []schema.RepositoryInput, th schema.Thresholds) (schema.TechDebtReport, error) {
	report := schema.TechDebtReport{
		Thresholds:   th,
		Repositories: make([]schema.RepoSummary, 0, len(repos)),
	}

	var errs []error
	for i, repo := range repos {
		label := fmt.Sprintf("repo_%d", i+1)
		summary, err := summarizeRepository(label, repo, th)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		report.Repositories = append(report.Repositories, summary)
	}
	return report, errors.Join(errs...)
}

// summarizeRepository runs the era orchestrator for one repository and
// flattens its findings in era order, then churn order within an era.
func summarizeRepository(label string, repo schema.RepositoryInput, th schema.Thresholds) (schema.RepoSummary, error) {
	if repo.LoadErr != nil {
		return schema.RepoSummary{}, fmt.Errorf("%s: %w", label, repo.LoadErr)
	}
	if repo.Repo == nil {
		return schema.RepoSummary{}, &schema.MissingInputError{Repo: label, Key: "repo"}
	}
	if repo.TotalCommitsAnalyzed == nil {
		return schema.RepoSummary{}, &schema.MissingInputError{Repo: label, Key: "total_commits_analyzed"}
	}

	eras, err := IdentifyTechDebt(repo, th)
	if err != nil {
		return schema.RepoSummary{}, fmt.Errorf("%s (%s): %w", label, *repo.Repo, err)
	}

	files := make([]schema.EraDebtRecord, 0)
	for _, era := range eras {
		for _, f := range era.Findings {
			files = append(files, schema.EraDebtRecord{
				EraIndex:    era.EraIndex,
				EraCommits:  era.CommitsInEra,
				ResetCommit: era.ResetCommit,
				DebtFinding: f,
			})
		}
	}

	return schema.RepoSummary{
		RepoLabel:     label,
		RepoName:      *repo.Repo,
		TotalCommits:  *repo.TotalCommitsAnalyzed,
		NumEras:       len(repo.Eras),
		EraBased:      true,
		HighDebtFiles: files,
		Eras:          eras,
	}, nil
}
