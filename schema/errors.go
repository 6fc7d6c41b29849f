package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed errors below.
var (
	ErrMissingInput    = errors.New("missing input")
	ErrMalformedRecord = errors.New("malformed record")
)

// MissingInputError reports an absent input document or a missing
// top-level repository key. It aborts the affected repository.
type MissingInputError struct {
	Repo string // Positional label such as "repo_2", empty for the document itself
	Key  string // Missing key, empty when the whole document is absent
}

func (e *MissingInputError) Error() string {
	switch {
	case e.Key == "":
		return fmt.Sprintf("%s: input document is empty", ErrMissingInput)
	case e.Repo == "":
		return fmt.Sprintf("%s: required key %q is absent", ErrMissingInput, e.Key)
	default:
		return fmt.Sprintf("%s: %s is missing required key %q", ErrMissingInput, e.Repo, e.Key)
	}
}

// Is lets errors.Is match ErrMissingInput.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// MalformedRecordError reports an era or file record that cannot be
// classified, such as one missing commit_count. It is fatal for the era.
type MalformedRecordError struct {
	Era    string // "era 3", or "era at position 2" when era_index itself is absent
	Node   int    // Position of the offending node, -1 when the era itself is malformed
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Node < 0 {
		return fmt.Sprintf("%s: %s: field %q %s", ErrMalformedRecord, e.Era, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s: node %d: field %q %s", ErrMalformedRecord, e.Era, e.Node, e.Field, e.Reason)
}

// Is lets errors.Is match ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
