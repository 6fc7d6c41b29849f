// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/techdebt/internal/contract"
	"github.com/huangsam/techdebt/schema"
	"golang.org/x/term"
)

// Widths of the console report. The File column is fixed; only the banner
// follows the terminal.
const (
	MaxBasenameWidth = 40
	MaxRuleWidth     = 85
	minRuleWidth     = 20
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints the console report and persists the report document.
func (ow *OutWriter) WriteReport(report schema.TechDebtReport, cfg *contract.Config) error {
	return PrintTechDebtReport(report, cfg)
}

// WriteCriteria prints the classification criteria using the configured criteria format.
func (ow *OutWriter) WriteCriteria(model *schema.CriteriaRenderModel, cfg *contract.Config) error {
	return PrintCriteriaDefinitions(model, cfg)
}

// getRuleWidth returns the width of the banner lines: MaxRuleWidth, narrowed to
// the terminal or the --width override when that is smaller.
func getRuleWidth(cfg *contract.Config) int {
	termWidth := cfg.Width

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Redirected output and CI get the full banner
			return MaxRuleWidth
		}
		termWidth = detectedWidth
	}

	return max(minRuleWidth, min(termWidth, MaxRuleWidth))
}
