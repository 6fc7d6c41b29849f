package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/huangsam/techdebt/internal/contract"
	"github.com/huangsam/techdebt/schema"

	"github.com/olekukonko/tablewriter"
)

// PrintCriteriaDefinitions displays the classification criteria.
// This is a static display that does not read any input document.
func PrintCriteriaDefinitions(model *schema.CriteriaRenderModel, cfg *contract.Config) error {
	switch cfg.Format {
	case schema.JSONOut:
		return writeWithFile("", func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile("", func(w io.Writer) error {
			return writeCSVCriteria(w, model)
		}, "Wrote CSV")
	default:
		return writeWithFile("", func(w io.Writer) error {
			return WriteCriteriaDefinitions(w, model, cfg)
		}, "Wrote text")
	}
}

// WriteCriteriaDefinitions writes the criteria in human-readable text format.
func WriteCriteriaDefinitions(w io.Writer, model *schema.CriteriaRenderModel, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	if _, err := fmt.Fprintf(w, "🧾 %s\n\n%s\n\n", model.Title, model.Description); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Reason", "Purpose", "Formula", "Flagged When"})
	var data [][]string
	for _, c := range model.Criteria {
		data = append(data, []string{
			string(c.Reason),
			c.Purpose,
			c.Formula,
			fmt.Sprintf("%s %s%%", c.Comparison, fmtFloat(c.Threshold)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	keys := make([]string, 0, len(model.Notes))
	for k := range model.Notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "- %s: %s\n", k, model.Notes[k]); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVCriteria writes the criteria in CSV format.
func writeCSVCriteria(w io.Writer, model *schema.CriteriaRenderModel) error {
	header := []string{"reason", "purpose", "formula", "comparison", "threshold"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range model.Criteria {
			record := []string{
				string(c.Reason),
				c.Purpose,
				c.Formula,
				c.Comparison,
				formatNumber(c.Threshold),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
