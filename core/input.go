package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/techdebt/schema"
)

// LoadRepositories decodes a document holding either one repository object
// or an array of them. Each array entry is decoded on its own, so a bad entry
// only sets LoadErr on its own slot and never hides its neighbours.
func LoadRepositories(r io.Reader) ([]schema.RepositoryInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &schema.MissingInputError{}
	}

	var raws []json.RawMessage
	switch trimmed[0] {
	case '{':
		raws = []json.RawMessage{trimmed}
	case '[':
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("failed to decode repository array: %w", err)
		}
		if len(raws) == 0 {
			return nil, &schema.MissingInputError{}
		}
	default:
		return nil, fmt.Errorf("input must be a JSON object or an array of objects, got %q", string(trimmed[0]))
	}

	repos := make([]schema.RepositoryInput, len(raws))
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &repos[i]); err != nil {
			repos[i] = schema.RepositoryInput{LoadErr: fmt.Errorf("failed to decode repository: %w", err)}
		}
	}
	return repos, nil
}

// LoadRepositoriesFile opens path and decodes it with LoadRepositories.
func LoadRepositoriesFile(path string) ([]schema.RepositoryInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return LoadRepositories(f)
}
