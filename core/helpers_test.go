package core

import "github.com/huangsam/techdebt/schema"

func ptr[T any](v T) *T { return &v }

// node builds a raw file record with every key present.
func node(path string, commits int, additions, deletions float64) schema.FileEraInput {
	return schema.FileEraInput{
		Path:        ptr(path),
		CommitCount: ptr(commits),
		Additions:   ptr(additions),
		Deletions:   ptr(deletions),
	}
}

// era builds a raw era with every key present.
func era(index, commits int, reset string, nodes ...schema.FileEraInput) schema.EraInput {
	e := schema.EraInput{
		EraIndex:     ptr(index),
		CommitsInEra: ptr(commits),
		Nodes:        &nodes,
	}
	if reset != "" {
		e.ResetCommit = ptr(reset)
	}
	return e
}

// repository builds a raw repository document.
func repository(name string, total int, eras ...schema.EraInput) schema.RepositoryInput {
	return schema.RepositoryInput{
		Repo:                 ptr(name),
		TotalCommitsAnalyzed: ptr(total),
		Eras:                 eras,
	}
}
