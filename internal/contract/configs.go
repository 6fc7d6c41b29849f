package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/techdebt/schema"
)

// StdoutFile is the --output-file value that sends a document to stdout.
const StdoutFile = "-"

// Config holds the runtime configuration for classification.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath   string // Absolute path of the input document, empty when none was given
	Thresholds  schema.Thresholds
	Output      schema.OutputMode // Persisted report format, text means console only
	OutputFile  string            // Empty means stdout
	Format      schema.OutputMode // Format of the criteria listing
	Precision   int
	Width       int // Terminal width override for the banner rule (0 = auto-detect)
	Strict      bool
	MaxFindings int

	UseColors bool // Enable colored reason tags in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Input      string  `mapstructure:"input"`
	CommitPct  float64 `mapstructure:"commit-pct"`
	ChurnPct   float64 `mapstructure:"churn-pct"`
	Output     string  `mapstructure:"output"`
	OutputFile string  `mapstructure:"output-file"`
	Precision  int     `mapstructure:"precision"`
	Width      int     `mapstructure:"width"`
	Color      string  `mapstructure:"color"`
	Strict     bool    `mapstructure:"strict"`

	// --- Fields from checkCmd.Flags() ---
	MaxFindings int `mapstructure:"max-findings"`

	// --- Fields from criteriaCmd.Flags() ---
	Format string `mapstructure:"format"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	if err := processOutput(cfg, input); err != nil {
		return err
	}
	if err := resolveInputPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Width = input.Width
	cfg.Strict = input.Strict

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be 1 or %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	if input.MaxFindings < 0 {
		return fmt.Errorf("max-findings cannot be negative (received %d)", input.MaxFindings)
	}
	cfg.MaxFindings = input.MaxFindings
	return nil
}

// processThresholds validates both percentage thresholds.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	th := schema.Thresholds{CommitPct: input.CommitPct, ChurnPct: input.ChurnPct}
	if err := ValidateThresholds(th); err != nil {
		return err
	}
	cfg.Thresholds = th
	return nil
}

// ValidateThresholds checks that both thresholds are percentages in [0, 100].
// NaN fails every comparison, so it is rejected along with out-of-range values.
func ValidateThresholds(th schema.Thresholds) error {
	if !isPercentage(th.CommitPct) {
		return fmt.Errorf("commit-pct must be between 0 and 100 (received %.2f)", th.CommitPct)
	}
	if !isPercentage(th.ChurnPct) {
		return fmt.Errorf("churn-pct must be between 0 and 100 (received %.2f)", th.ChurnPct)
	}
	return nil
}

func isPercentage(v float64) bool {
	return v >= 0 && v <= 100
}

// processOutput validates the report and criteria formats and resolves the
// output file for formats that are persisted.
func processOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be json, csv, parquet, text", input.Output)
	}

	cfg.Format = schema.TextOut
	if input.Format != "" {
		cfg.Format = schema.OutputMode(strings.ToLower(input.Format))
	}
	if cfg.Format == schema.ParquetOut {
		return fmt.Errorf("invalid criteria format '%s'. must be text, csv, json", input.Format)
	}
	if _, ok := schema.ValidOutputModes[cfg.Format]; !ok {
		return fmt.Errorf("invalid criteria format '%s'. must be text, csv, json", input.Format)
	}

	switch input.OutputFile {
	case "":
		if cfg.Output != schema.TextOut {
			cfg.OutputFile = DefaultOutputFile(cfg.Output)
		}
	case StdoutFile:
		if cfg.Output == schema.ParquetOut {
			return fmt.Errorf("parquet output requires a file, not stdout")
		}
		cfg.OutputFile = ""
	default:
		cfg.OutputFile = input.OutputFile
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// resolveInputPath picks the input document from the positional argument or
// --input and checks that it exists. Commands that need no input leave both empty.
func resolveInputPath(cfg *Config, input *ConfigRawInput) error {
	path := input.InputPathStr
	if path == "" {
		path = input.Input
	}
	if path == "" {
		cfg.InputPath = ""
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("input %q is not readable: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %q is a directory, expected a JSON document", path)
	}
	cfg.InputPath = absPath
	return nil
}
