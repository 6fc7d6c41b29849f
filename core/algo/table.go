// Package algo has the pure era classification algorithms.
package algo

import "github.com/huangsam/techdebt/schema"

// BuildEraTable converts one era's file records into a statistics table with
// churn and percentage columns derived for every row.
//
// An empty table is returned when the era has no files or when its total
// churn is exactly zero, so no percentage is ever computed against a zero
// denominator. commitsInEra must be positive whenever nodes is non-empty.
func BuildEraTable(nodes []schema.FileEraRecord, commitsInEra int) []schema.EraStatRow {
	if len(nodes) == 0 {
		return nil
	}

	rows := make([]schema.EraStatRow, len(nodes))
	for i, n := range nodes {
		rows[i] = schema.EraStatRow{FileEraRecord: n, CodeChurn: n.Additions + n.Deletions}
	}

	totalChurn := TotalChurn(rows)
	if totalChurn == 0 {
		return nil
	}

	for i := range rows {
		rows[i].CommitPercentage = float64(rows[i].CommitCount) / float64(commitsInEra) * 100
		rows[i].CodeChurnPercentage = rows[i].CodeChurn / totalChurn * 100
	}
	return rows
}

// TotalChurn returns the sum of churn over all rows of a table.
func TotalChurn(rows []schema.EraStatRow) float64 {
	total := 0.0
	for _, r := range rows {
		total += r.CodeChurn
	}
	return total
}
