// Package core has core logic for era classification and report assembly.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/techdebt/internal/contract"
	"github.com/huangsam/techdebt/internal/outwriter"
	"github.com/huangsam/techdebt/schema"
)

// errNoInput is returned when a command that classifies was given no document.
var errNoInput = fmt.Errorf("no input document given, pass a path or --input: %w", schema.ErrMissingInput)

// ExecuteTechDebtReport classifies the input document, prints the console report
// and persists the report document. It serves as the main entry point for 'report'.
func ExecuteTechDebtReport(ctx context.Context, cfg *contract.Config) error {
	// A document streamed to stdout owns it
	if cfg.Output != schema.TextOut && cfg.OutputFile == "" {
		ctx = withSuppressHeader(ctx)
	}
	start := time.Now()
	report, skipped, err := runClassification(ctx, cfg)
	if err != nil {
		return err
	}

	if err := outwriter.NewOutWriter().WriteReport(report, cfg); err != nil {
		return err
	}
	if !shouldSuppressHeader(ctx) {
		fmt.Printf("⏱️  Classification completed in %v\n", time.Since(start))
	}
	return strictError(cfg, skipped)
}

// GetTechDebtReport loads the document at inputPath and classifies it with th.
// A non-nil error alongside a report with repositories means some repositories
// were skipped; a load failure returns an empty report.
func GetTechDebtReport(ctx context.Context, inputPath string, th schema.Thresholds) (schema.TechDebtReport, error) {
	if inputPath == "" {
		return schema.TechDebtReport{Thresholds: th}, errNoInput
	}
	if err := ctx.Err(); err != nil {
		return schema.TechDebtReport{Thresholds: th}, err
	}
	repos, err := LoadRepositoriesFile(inputPath)
	if err != nil {
		return schema.TechDebtReport{Thresholds: th}, err
	}
	return AggregateRepositories(repos, th)
}

// runClassification prints the run header, loads and classifies the input, and
// warns about every repository that had to be skipped. The skipped failures are
// returned separately from a fatal load failure.
func runClassification(ctx context.Context, cfg *contract.Config) (schema.TechDebtReport, []error, error) {
	if !shouldSuppressHeader(ctx) {
		logRunHeader(cfg)
	}
	if cfg.InputPath == "" {
		return schema.TechDebtReport{}, nil, errNoInput
	}
	if err := ctx.Err(); err != nil {
		return schema.TechDebtReport{}, nil, err
	}

	repos, err := LoadRepositoriesFile(cfg.InputPath)
	if err != nil {
		return schema.TechDebtReport{}, nil, err
	}

	report, repoErr := AggregateRepositories(repos, cfg.Thresholds)
	skipped := splitErrors(repoErr)
	for _, e := range skipped {
		contract.LogWarn("Skipping repository", e)
	}
	return report, skipped, nil
}

// logRunHeader prints the input and thresholds of a run.
func logRunHeader(cfg *contract.Config) {
	fmt.Printf("🔎 Input: %s\n", contract.InfoColor.Sprint(cfg.InputPath))
	fmt.Printf("📏 Thresholds: commits >= %.1f%%, churn >= %.1f%%\n", cfg.Thresholds.CommitPct, cfg.Thresholds.ChurnPct)
}

// strictError turns skipped repositories into a failure when --strict is set.
func strictError(cfg *contract.Config, skipped []error) error {
	if len(skipped) == 0 || !cfg.Strict {
		return nil
	}
	return fmt.Errorf("%d repositories could not be classified: %w", len(skipped), errors.Join(skipped...))
}

// splitErrors flattens an errors.Join result into its parts.
func splitErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
