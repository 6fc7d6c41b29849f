package core

import (
	"context"

	"github.com/huangsam/techdebt/internal/contract"
	"github.com/huangsam/techdebt/internal/outwriter"
	"github.com/huangsam/techdebt/schema"
)

// ExecuteTechDebtCriteria prints the classification criteria with the active
// thresholds. No input document is read.
func ExecuteTechDebtCriteria(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteCriteria(BuildCriteriaRenderModel(cfg.Thresholds), cfg)
}

// BuildCriteriaRenderModel describes both criteria with the given thresholds.
func BuildCriteriaRenderModel(th schema.Thresholds) *schema.CriteriaRenderModel {
	return &schema.CriteriaRenderModel{
		Title: "Tech Debt Classification Criteria",
		Description: "Files are classified inside each era independently. " +
			"A file is flagged when it meets either criterion; every criterion it meets becomes a reason.",
		Criteria: []schema.CriterionDefinition{
			{
				Reason:     schema.HighCommits,
				Purpose:    "File is touched by an outsized share of the era's commits",
				Formula:    "commit_count / commits_in_era * 100",
				Threshold:  th.CommitPct,
				Comparison: ">=",
			},
			{
				Reason:     schema.HighChurn,
				Purpose:    "File absorbs an outsized share of the era's line churn",
				Formula:    "(additions + deletions) / era_total_churn * 100",
				Threshold:  th.ChurnPct,
				Comparison: ">=",
			},
		},
		Notes: map[string]string{
			"ordering":    "findings are sorted by absolute churn, highest first",
			"empty_eras":  "eras without files or with zero total churn yield no findings",
			"denominator": "total_commits_analyzed is reported only; percentages use commits_in_era",
			"reasons":     "reason values are rounded to one decimal place",
		},
	}
}
