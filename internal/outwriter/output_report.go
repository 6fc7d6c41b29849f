package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/techdebt/internal/contract"
	"github.com/huangsam/techdebt/internal/parquet"
	"github.com/huangsam/techdebt/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintTechDebtReport prints the console report and persists the report document,
// dispatching based on the output format configured. Text output sends the console
// report to the output file instead of persisting a document.
func PrintTechDebtReport(report schema.TechDebtReport, cfg *contract.Config) error {
	if cfg.Output == schema.TextOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteTechDebtReport(w, report, cfg)
		}, "Wrote report")
	}

	// A document streamed to stdout must not be mixed with the console report
	if cfg.OutputFile != "" {
		if err := WriteTechDebtReport(os.Stdout, report, cfg); err != nil {
			return err
		}
	}

	switch cfg.Output {
	case schema.CSVOut:
		fmtFloat, intFmt := createFormatters(cfg.Precision)
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteFindings(w, parquet.FindingRowsFromReport(report))
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	}
	return nil
}

// WriteTechDebtReport writes the human-readable report of every repository.
func WriteTechDebtReport(w io.Writer, report schema.TechDebtReport, cfg *contract.Config) error {
	for _, repo := range report.Repositories {
		if err := writeRepositoryReport(w, repo, report.Thresholds, cfg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Classified %d repositories with %d high tech debt entries\n",
		len(report.Repositories), report.TotalFindings())
	return err
}

// writeRepositoryReport writes the banner and per-era tables for one repository.
func writeRepositoryReport(w io.Writer, repo schema.RepoSummary, th schema.Thresholds, cfg *contract.Config) error {
	rule := strings.Repeat("=", getRuleWidth(cfg))
	if _, err := fmt.Fprintf(w, "\n%s\nTECH DEBT REPORT: %s\n%s\n", rule, repo.RepoName, rule); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total commits analyzed: %d\n", repo.TotalCommits); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Thresholds: >= %s%% commits, >= %s%% of total churn\n",
		formatThreshold(th.CommitPct), formatThreshold(th.ChurnPct)); err != nil {
		return err
	}

	if len(repo.Eras) == 0 {
		if _, err := fmt.Fprintf(w, "\nNo high tech debt files found in %d eras\n", repo.NumEras); err != nil {
			return err
		}
	}

	for _, era := range repo.Eras {
		if _, err := fmt.Fprintf(w, "\n--- %s ---\n", era.Label()); err != nil {
			return err
		}
		if era.ResetCommit != nil && *era.ResetCommit != "" {
			if _, err := fmt.Fprintf(w, "Reset at commit: %s...\n", schema.ShortCommit(*era.ResetCommit)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "High tech debt files found: %d\n", len(era.Findings)); err != nil {
			return err
		}
		if err := writeEraTable(w, era.Findings, cfg); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n\n", rule)
	return err
}

// writeEraTable renders the findings of one era as a table.
func writeEraTable(w io.Writer, findings []schema.DebtFinding, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"File", "Commits%", "Churn%", "Churn", "Reasons"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignRight, tw.AlignLeft}
	})

	data := make([][]string, 0, len(findings))
	for _, f := range findings {
		data = append(data, []string{
			contract.TruncatePath(baseName(f.Path), MaxBasenameWidth),
			fmtFloat(f.CommitPercentage) + "%",
			fmtFloat(f.CodeChurnPercentage) + "%",
			fmt.Sprintf("%.0f", f.CodeChurn),
			contract.FormatReasonsForConsole(f.Reasons, cfg.UseColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeReportJSON writes the report document: an array of repository summaries.
func writeReportJSON(w io.Writer, report schema.TechDebtReport) error {
	repos := report.Repositories
	if repos == nil {
		repos = []schema.RepoSummary{}
	}
	return writeJSON(w, repos)
}

// writeReportCSV writes one row per finding across all repositories.
func writeReportCSV(w io.Writer, report schema.TechDebtReport, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"repo_label",
		"repo_name",
		"era_index",
		"era_commits",
		"reset_commit",
		"path",
		"commit_count",
		"additions",
		"deletions",
		"code_churn",
		"commit_percentage",
		"code_churn_percentage",
		"reasons",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, repo := range report.Repositories {
			for _, f := range repo.HighDebtFiles {
				reset := ""
				if f.ResetCommit != nil {
					reset = *f.ResetCommit
				}
				reasons := make([]string, len(f.Reasons))
				for i, r := range f.Reasons {
					reasons[i] = schema.FormatReason(r)
				}
				rec := []string{
					repo.RepoLabel,
					repo.RepoName,
					fmt.Sprintf(intFmt, f.EraIndex),
					fmt.Sprintf(intFmt, f.EraCommits),
					reset,
					f.Path,
					fmt.Sprintf(intFmt, f.CommitCount),
					formatNumber(f.Additions),
					formatNumber(f.Deletions),
					formatNumber(f.CodeChurn),
					fmtFloat(f.CommitPercentage),
					fmtFloat(f.CodeChurnPercentage),
					strings.Join(reasons, "|"),
				}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

// baseName returns the last slash-separated element of p, or "" for a trailing slash.
func baseName(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}

// formatThreshold prints whole thresholds as "5.0" and keeps any finer precision.
func formatThreshold(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatNumber prints line counts without a trailing ".0".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
