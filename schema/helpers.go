package schema

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// RoundToTenth rounds a percentage to one decimal place the way "%.1f"
// prints it: exact halves round to even, so 6.25 becomes 6.2.
func RoundToTenth(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// FormatReason formats a reason as "kind (value%)" with one decimal place.
func FormatReason(r Reason) string {
	return fmt.Sprintf("%s (%.1f%%)", r.Kind, r.Value)
}

// FormatReasons joins reasons as "high_commits (6.0%), high_churn (1.0%)".
func FormatReasons(reasons []Reason) string {
	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = FormatReason(r)
	}
	return strings.Join(parts, ", ")
}

// ParseReason parses the "kind (value%)" form back into a Reason.
func ParseReason(s string) (Reason, error) {
	open := strings.LastIndex(s, " (")
	if open < 0 || !strings.HasSuffix(s, "%)") {
		return Reason{}, fmt.Errorf("invalid reason %q: expected 'kind (value%%)'", s)
	}
	kind := ReasonKind(s[:open])
	if !slices.Contains(AllReasonKinds, kind) {
		return Reason{}, fmt.Errorf("invalid reason kind %q", kind)
	}
	value, err := strconv.ParseFloat(s[open+2:len(s)-2], 64)
	if err != nil {
		return Reason{}, fmt.Errorf("invalid reason value in %q: %w", s, err)
	}
	return Reason{Kind: kind, Value: value}, nil
}

// ShortCommit returns the first 8 characters of a commit identifier.
func ShortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
