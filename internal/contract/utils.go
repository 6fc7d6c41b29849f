package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/techdebt/schema"
)

// Color variables for console output.
var (
	CommitsColor = color.New(color.FgMagenta, color.Bold) // commit concentration
	ChurnColor   = color.New(color.FgRed, color.Bold)     // churn concentration
	PassColor    = color.New(color.FgGreen, color.Bold)
	FailColor    = color.New(color.FgRed, color.Bold)
	InfoColor    = color.New(color.FgCyan)
)

// GetColorReason returns a reason in its "kind (value%)" form, colored by kind.
func GetColorReason(r schema.Reason) string {
	text := schema.FormatReason(r)
	switch r.Kind {
	case schema.HighCommits:
		return CommitsColor.Sprint(text)
	case schema.HighChurn:
		return ChurnColor.Sprint(text)
	default:
		return text
	}
}

// FormatReasonsForConsole joins reasons with ", ", coloring each when useColors is set.
func FormatReasonsForConsole(reasons []schema.Reason, useColors bool) string {
	if !useColors {
		return schema.FormatReasons(reasons)
	}
	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = GetColorReason(r)
	}
	return strings.Join(parts, ", ")
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
