package core

import (
	"fmt"

	"github.com/huangsam/techdebt/core/algo"
	"github.com/huangsam/techdebt/schema"
)

// IdentifyTechDebt classifies every era of one repository independently and
// returns the eras that produced at least one finding, in input order.
// Each era's percentages are relative to that era alone.
//
// The first malformed era aborts the whole repository with a
// *schema.MalformedRecordError; eras with no files or zero churn are not
// errors, they simply yield nothing.
func IdentifyTechDebt(repo schema.RepositoryInput, th schema.Thresholds) ([]schema.EraResult, error) {
	var results []schema.EraResult
	for pos, raw := range repo.Eras {
		era, err := validateEra(pos, raw)
		if err != nil {
			return nil, err
		}
		table := algo.BuildEraTable(era.Nodes, era.CommitsInEra)
		findings := algo.ClassifyEra(table, th)
		if len(findings) == 0 {
			continue
		}
		results = append(results, schema.EraResult{
			EraIndex:     era.EraIndex,
			CommitsInEra: era.CommitsInEra,
			ResetCommit:  era.ResetCommit,
			Findings:     findings,
		})
	}
	return results, nil
}

// validateEra converts a raw era into a schema.Era, coercing absent
// additions and deletions to zero.
func validateEra(pos int, raw schema.EraInput) (schema.Era, error) {
	name := fmt.Sprintf("era at position %d", pos)
	if raw.EraIndex == nil {
		return schema.Era{}, malformedEra(name, "era_index", "is absent")
	}
	name = fmt.Sprintf("era %d", *raw.EraIndex)

	if raw.CommitsInEra == nil {
		return schema.Era{}, malformedEra(name, "commits_in_era", "is absent")
	}
	if *raw.CommitsInEra < 0 {
		return schema.Era{}, malformedEra(name, "commits_in_era", "is negative")
	}
	if raw.Nodes == nil {
		return schema.Era{}, malformedEra(name, "nodes", "is absent")
	}
	if len(*raw.Nodes) > 0 && *raw.CommitsInEra == 0 {
		return schema.Era{}, malformedEra(name, "commits_in_era", "is zero but the era has files")
	}

	nodes := make([]schema.FileEraRecord, 0, len(*raw.Nodes))
	for i, n := range *raw.Nodes {
		switch {
		case n.Path == nil:
			return schema.Era{}, malformedNode(name, i, "path", "is absent")
		case n.CommitCount == nil:
			return schema.Era{}, malformedNode(name, i, "commit_count", "is absent")
		case *n.CommitCount < 0:
			return schema.Era{}, malformedNode(name, i, "commit_count", "is negative")
		case n.Additions != nil && *n.Additions < 0:
			return schema.Era{}, malformedNode(name, i, "additions", "is negative")
		case n.Deletions != nil && *n.Deletions < 0:
			return schema.Era{}, malformedNode(name, i, "deletions", "is negative")
		}
		nodes = append(nodes, schema.FileEraRecord{
			Path:        *n.Path,
			CommitCount: *n.CommitCount,
			Additions:   valueOrZero(n.Additions),
			Deletions:   valueOrZero(n.Deletions),
		})
	}

	return schema.Era{
		EraIndex:     *raw.EraIndex,
		CommitsInEra: *raw.CommitsInEra,
		ResetCommit:  raw.ResetCommit,
		Nodes:        nodes,
	}, nil
}

func malformedEra(era, field, reason string) error {
	return &schema.MalformedRecordError{Era: era, Node: -1, Field: field, Reason: reason}
}

func malformedNode(era string, node int, field, reason string) error {
	return &schema.MalformedRecordError{Era: era, Node: node, Field: field, Reason: reason}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
