package cmd

import (
	"fmt"

	"github.com/huangsam/techdebt/core"
	"github.com/spf13/cobra"
)

// reportCmd classifies every era of every repository in the input document.
var reportCmd = &cobra.Command{
	Use:   "report [graph.json]",
	Short: "Flag high tech debt files in every era of the input repositories",
	Long: `Classify the files of each era independently and report those that meet either threshold.

A file is flagged when it is touched by at least --commit-pct percent of its era's
commits, or holds at least --churn-pct percent of its era's line churn. Findings are
ordered by absolute churn within each era.

The input is the JSON graph export of one repository, or an array of them. Repositories
that cannot be classified are skipped with a warning unless --strict is set.

Examples:
  # Console report plus tech_debt_report.json
  techdebt report graph.json

  # Console report only
  techdebt report graph.json --output text

  # Stricter thresholds, CSV written to a chosen file
  techdebt report --input graph.json --commit-pct 10 --churn-pct 5 --output csv --output-file debt.csv

  # Stream JSON to another tool
  techdebt report graph.json --output-file - | jq '.[].high_debt_files'`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := core.ExecuteTechDebtReport(rootCtx, cfg); err != nil {
			return fmt.Errorf("cannot classify tech debt: %w", err)
		}
		return nil
	},
}
