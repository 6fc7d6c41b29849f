package cmd

import (
	"fmt"

	"github.com/huangsam/techdebt/core"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check [graph.json]",
	Short: "Enforce a tech debt budget for CI/CD pipelines (fails build on violations)",
	Long: `Classify the input document and fail when the number of flagged files exceeds a budget.

Designed specifically for CI/CD integration - exits with a non-zero code when the total
number of findings across all repositories is above --max-findings. With --strict, a
repository that cannot be classified also fails the check.

Default budget: 0 findings

Examples:
  # Fail on any finding
  techdebt check graph.json

  # Tolerate a known backlog of findings
  techdebt check graph.json --max-findings 25

  # Gate on churn only, with a looser commit threshold
  techdebt check graph.json --commit-pct 100 --churn-pct 10 --strict`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Budget evaluation is done in ExecuteTechDebtCheck
		if err := core.ExecuteTechDebtCheck(rootCtx, cfg); err != nil {
			return fmt.Errorf("policy check failed: %w", err)
		}
		return nil
	},
}
