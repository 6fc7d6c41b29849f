package algo

import (
	"math"
	"testing"

	"github.com/huangsam/techdebt/schema"
)

// FuzzClassifyEra fuzzes the table and classifier with a small random era.
func FuzzClassifyEra(f *testing.F) {
	f.Add(6, 10.0, 0.0, 1, 990.0, 0.0, 100, 5.0, 1.0)
	f.Add(0, 0.0, 0.0, 0, 0.0, 0.0, 1, 0.0, 0.0)
	f.Add(50, 1e9, 1e9, 50, 1.0, 0.0, 50, 100.0, 100.0)

	f.Fuzz(func(t *testing.T,
		c1 int, add1, del1 float64,
		c2 int, add2, del2 float64,
		commitsInEra int,
		commitPct, churnPct float64,
	) {
		if commitsInEra <= 0 || c1 < 0 || c2 < 0 {
			return
		}
		for _, v := range []float64{add1, del1, add2, del2, commitPct, churnPct} {
			if v < 0 || v > 1e12 || math.IsNaN(v) || math.IsInf(v, 0) {
				return
			}
		}

		nodes := []schema.FileEraRecord{
			{Path: "a.go", CommitCount: c1, Additions: add1, Deletions: del1},
			{Path: "b.go", CommitCount: c2, Additions: add2, Deletions: del2},
		}
		table := BuildEraTable(nodes, commitsInEra)
		if add1+del1+add2+del2 == 0 && len(table) != 0 {
			t.Fatalf("zero churn era produced %d rows", len(table))
		}

		findings := ClassifyEra(table, schema.Thresholds{CommitPct: commitPct, ChurnPct: churnPct})
		if len(findings) > len(table) {
			t.Fatalf("more findings (%d) than rows (%d)", len(findings), len(table))
		}
		for i, f := range findings {
			if len(f.Reasons) == 0 || len(f.Reasons) > 2 {
				t.Fatalf("finding %s has %d reasons", f.Path, len(f.Reasons))
			}
			if i > 0 && f.CodeChurn > findings[i-1].CodeChurn {
				t.Fatalf("findings out of order at %d", i)
			}
			if math.IsNaN(f.CommitPercentage) || math.IsNaN(f.CodeChurnPercentage) {
				t.Fatalf("NaN percentage for %s", f.Path)
			}
		}
	})
}
