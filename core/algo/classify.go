package algo

import (
	"sort"

	"github.com/huangsam/techdebt/schema"
)

// ClassifyEra returns the rows of an era statistics table that meet either
// threshold, each annotated with the reasons it was flagged. Thresholds are
// inclusive. The result is ordered by absolute churn, highest first; rows
// with equal churn keep their table order.
func ClassifyEra(table []schema.EraStatRow, th schema.Thresholds) []schema.DebtFinding {
	var findings []schema.DebtFinding
	for _, row := range table {
		reasons := reasonsFor(row, th)
		if len(reasons) == 0 {
			continue
		}
		findings = append(findings, schema.DebtFinding{EraStatRow: row, Reasons: reasons})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].CodeChurn > findings[j].CodeChurn
	})
	return findings
}

// reasonsFor attributes reasons in fixed order: commits first, then churn.
func reasonsFor(row schema.EraStatRow, th schema.Thresholds) []schema.Reason {
	var reasons []schema.Reason
	if row.CommitPercentage >= th.CommitPct {
		reasons = append(reasons, schema.Reason{
			Kind:  schema.HighCommits,
			Value: schema.RoundToTenth(row.CommitPercentage),
		})
	}
	if row.CodeChurnPercentage >= th.ChurnPct {
		reasons = append(reasons, schema.Reason{
			Kind:  schema.HighChurn,
			Value: schema.RoundToTenth(row.CodeChurnPercentage),
		})
	}
	return reasons
}
