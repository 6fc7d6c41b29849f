package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/techdebt/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleRepoDoc = `{
  "repo": "org/app",
  "total_commits_analyzed": 100,
  "eras": [
    {
      "era_index": 0,
      "commits_in_era": 100,
      "reset_commit": null,
      "nodes": [
        {"path": "a.py", "commit_count": 6, "additions": 10, "deletions": 0, "edges": []},
        {"path": "b.py", "commit_count": 1, "additions": 990}
      ]
    }
  ]
}`

func TestLoadRepositoriesObject(t *testing.T) {
	repos, err := LoadRepositories(strings.NewReader(singleRepoDoc))
	require.NoError(t, err)
	require.Len(t, repos, 1)

	repo := repos[0]
	require.NoError(t, repo.LoadErr)
	require.NotNil(t, repo.Repo)
	assert.Equal(t, "org/app", *repo.Repo)
	require.Len(t, repo.Eras, 1)
	assert.Nil(t, repo.Eras[0].ResetCommit)
	require.NotNil(t, repo.Eras[0].Nodes)

	nodes := *repo.Eras[0].Nodes
	require.Len(t, nodes, 2)
	assert.Nil(t, nodes[1].Deletions)
	assert.Equal(t, 990.0, *nodes[1].Additions)
}

func TestLoadRepositoriesArray(t *testing.T) {
	doc := `[` + singleRepoDoc + `, {"repo": "org/lib", "total_commits_analyzed": "many"}, {"repo": "org/empty", "total_commits_analyzed": 0}]`
	repos, err := LoadRepositories(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, repos, 3)

	assert.NoError(t, repos[0].LoadErr)
	assert.Error(t, repos[1].LoadErr)
	assert.NoError(t, repos[2].LoadErr)
	assert.Nil(t, repos[2].Eras)

	report, aggErr := AggregateRepositories(repos, schema.DefaultThresholds())
	require.Error(t, aggErr)
	assert.Contains(t, aggErr.Error(), "repo_2")
	require.Len(t, report.Repositories, 2)
	assert.Equal(t, "repo_1", report.Repositories[0].RepoLabel)
	assert.Equal(t, "repo_3", report.Repositories[1].RepoLabel)
}

func TestLoadRepositoriesMissing(t *testing.T) {
	for _, doc := range []string{"", "   \n", "null", "[]"} {
		_, err := LoadRepositories(strings.NewReader(doc))
		assert.True(t, errors.Is(err, schema.ErrMissingInput), "doc %q", doc)
	}
}

func TestLoadRepositoriesInvalid(t *testing.T) {
	for _, doc := range []string{`"text"`, `42`, `[{"repo": 1}`} {
		_, err := LoadRepositories(strings.NewReader(doc))
		assert.Error(t, err, "doc %q", doc)
	}
}

func TestLoadRepositoriesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(singleRepoDoc), 0o644))

	repos, err := LoadRepositoriesFile(path)
	require.NoError(t, err)
	assert.Len(t, repos, 1)

	_, err = LoadRepositoriesFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
