package cmd

import (
	"fmt"

	"github.com/huangsam/techdebt/core"
	"github.com/spf13/cobra"
)

// criteriaCmd displays the classification criteria.
var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "Display the formulas and thresholds used to flag tech debt files",
	Long: `Show how files are classified, including:
- The reason emitted for each criterion
- The percentage formula behind it
- The active threshold from flags, env or .techdebt.yaml

No input document is read - this is purely informational.

Examples:
  # Show default criteria
  techdebt criteria

  # Show criteria with custom thresholds as JSON
  techdebt criteria --commit-pct 10 --format json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := core.ExecuteTechDebtCriteria(rootCtx, cfg); err != nil {
			return fmt.Errorf("cannot display criteria: %w", err)
		}
		return nil
	},
}
