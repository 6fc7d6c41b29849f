package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/techdebt/internal/contract"
	"github.com/huangsam/techdebt/schema"
)

// ExecuteTechDebtCheck runs the check command for CI/CD gating.
// It classifies the input document and fails when the total number of
// findings exceeds the configured budget, or when --strict is set and a
// repository could not be classified.
func ExecuteTechDebtCheck(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	report, skipped, err := runClassification(ctx, cfg)
	if err != nil {
		return err
	}

	result := buildCheckResult(report, len(skipped), cfg)
	printCheckResult(&result, time.Since(start))

	if !result.Passed {
		if result.TotalFindings > result.MaxFindings {
			return fmt.Errorf("%d finding(s) exceed the budget of %d", result.TotalFindings, result.MaxFindings)
		}
		return strictError(cfg, skipped)
	}
	return nil
}

// buildCheckResult summarizes a report against the findings budget.
func buildCheckResult(report schema.TechDebtReport, failedRepos int, cfg *contract.Config) schema.CheckResult {
	result := schema.CheckResult{
		MaxFindings:   cfg.MaxFindings,
		TotalFindings: report.TotalFindings(),
		Thresholds:    report.Thresholds,
		FailedRepos:   failedRepos,
	}

	for _, repo := range report.Repositories {
		entry := schema.CheckRepository{
			Label:       repo.RepoLabel,
			Name:        repo.RepoName,
			ErasFlagged: len(repo.Eras),
			Findings:    repo.FindingCount(),
		}
		for _, f := range repo.HighDebtFiles {
			if f.HasReason(schema.HighCommits) {
				entry.CommitHits++
			}
			if f.HasReason(schema.HighChurn) {
				entry.ChurnHits++
			}
			if entry.TopFile == "" || f.CodeChurn > entry.TopChurn {
				entry.TopFile = f.Path
				entry.TopChurn = f.CodeChurn
			}
		}
		result.Repositories = append(result.Repositories, entry)
	}

	result.Passed = result.TotalFindings <= result.MaxFindings && (failedRepos == 0 || !cfg.Strict)
	return result
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(result *schema.CheckResult, duration time.Duration) {
	printCheckHeader(result, duration)

	if result.Passed {
		printCheckSuccess(result)
	} else {
		printCheckFailure(result)
	}
}

// printCheckHeader prints the common header information for check results.
func printCheckHeader(result *schema.CheckResult, duration time.Duration) {
	fmt.Println("Tech Debt Check Results:")

	// Define labels and values for dynamic padding
	labels := []string{"Thresholds:", "Budget:", "Skipped:"}
	values := []any{
		fmt.Sprintf("commits>=%.1f%%, churn>=%.1f%%", result.Thresholds.CommitPct, result.Thresholds.ChurnPct),
		fmt.Sprintf("%d finding(s)", result.MaxFindings),
		fmt.Sprintf("%d repositories", result.FailedRepos),
	}

	// Find the longest label for consistent padding
	maxLabelLen := 0
	for _, label := range labels {
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}

	for i, label := range labels {
		fmt.Printf("  %-*s %v\n", maxLabelLen+1, label, values[i])
	}
	fmt.Println()

	fmt.Printf("Checked %d repositories in %v\n\n", len(result.Repositories), duration)
}

// printCheckSuccess prints the success case output.
func printCheckSuccess(result *schema.CheckResult) {
	fmt.Printf("%s %d finding(s) within budget of %d\n\n",
		contract.PassColor.Sprint("✅"), result.TotalFindings, result.MaxFindings)
	printCheckRepositories(result)
}

// printCheckFailure prints the failure case output.
func printCheckFailure(result *schema.CheckResult) {
	if result.TotalFindings > result.MaxFindings {
		fmt.Printf("%s Tech debt check failed: %d finding(s) exceed budget of %d\n\n",
			contract.FailColor.Sprint("❌"), result.TotalFindings, result.MaxFindings)
	} else {
		fmt.Printf("%s Tech debt check failed: %d repositories could not be classified\n\n",
			contract.FailColor.Sprint("❌"), result.FailedRepos)
	}
	printCheckRepositories(result)
}

// printCheckRepositories prints one line per repository, top file first.
func printCheckRepositories(result *schema.CheckResult) {
	for _, repo := range result.Repositories {
		if repo.Findings == 0 {
			fmt.Printf("  %s (%s): no findings\n", repo.Label, repo.Name)
			continue
		}
		fmt.Printf("  %s (%s): %d finding(s) in %d era(s) [commits %d, churn %d], top: %s (churn %.0f)\n",
			repo.Label, repo.Name, repo.Findings, repo.ErasFlagged, repo.CommitHits, repo.ChurnHits, repo.TopFile, repo.TopChurn)
	}
	fmt.Println()
}
