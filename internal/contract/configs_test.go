package contract

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/techdebt/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input equivalent to the CLI defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		CommitPct: schema.DefaultCommitPctThreshold,
		ChurnPct:  schema.DefaultChurnPctThreshold,
		Output:    string(schema.JSONOut),
		Precision: DefaultPrecision,
		Color:     "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	inputFile := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(inputFile, []byte(`{}`), 0o644))

	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "valid with positional input", mutate: func(in *ConfigRawInput) { in.InputPathStr = inputFile }},
		{name: "valid with input flag", mutate: func(in *ConfigRawInput) { in.Input = inputFile }},
		{name: "zero thresholds", mutate: func(in *ConfigRawInput) { in.CommitPct, in.ChurnPct = 0, 0 }},
		{name: "hundred thresholds", mutate: func(in *ConfigRawInput) { in.CommitPct, in.ChurnPct = 100, 100 }},
		{name: "negative commit threshold", mutate: func(in *ConfigRawInput) { in.CommitPct = -1 }, expectError: true},
		{name: "churn threshold above hundred", mutate: func(in *ConfigRawInput) { in.ChurnPct = 100.5 }, expectError: true},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "precision too high", mutate: func(in *ConfigRawInput) { in.Precision = 3 }, expectError: true},
		{name: "precision zero", mutate: func(in *ConfigRawInput) { in.Precision = 0 }, expectError: true},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "sometimes" }, expectError: true},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -10 }, expectError: true},
		{name: "negative max findings", mutate: func(in *ConfigRawInput) { in.MaxFindings = -1 }, expectError: true},
		{name: "parquet to stdout", mutate: func(in *ConfigRawInput) {
			in.Output = string(schema.ParquetOut)
			in.OutputFile = StdoutFile
		}, expectError: true},
		{name: "parquet criteria format", mutate: func(in *ConfigRawInput) { in.Format = "parquet" }, expectError: true},
		{name: "missing input file", mutate: func(in *ConfigRawInput) { in.Input = filepath.Join(t.TempDir(), "nope.json") }, expectError: true},
		{name: "input is a directory", mutate: func(in *ConfigRawInput) { in.InputPathStr = t.TempDir() }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateFields(t *testing.T) {
	inputFile := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(inputFile, []byte(`[]`), 0o644))

	input := validInput()
	input.InputPathStr = inputFile
	input.Input = "ignored.json"
	input.CommitPct = 7.5
	input.ChurnPct = 2
	input.Output = "CSV"
	input.Precision = 2
	input.Width = 120
	input.Color = "no"
	input.Strict = true
	input.MaxFindings = 10
	input.Format = "json"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, inputFile, cfg.InputPath)
	assert.Equal(t, schema.Thresholds{CommitPct: 7.5, ChurnPct: 2}, cfg.Thresholds)
	assert.Equal(t, schema.CSVOut, cfg.Output)
	assert.Equal(t, "tech_debt_report.csv", cfg.OutputFile)
	assert.Equal(t, schema.JSONOut, cfg.Format)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, 120, cfg.Width)
	assert.False(t, cfg.UseColors)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 10, cfg.MaxFindings)
}

func TestProcessOutputFile(t *testing.T) {
	tests := []struct {
		name       string
		output     schema.OutputMode
		outputFile string
		expected   string
	}{
		{"json default file", schema.JSONOut, "", "tech_debt_report.json"},
		{"parquet default file", schema.ParquetOut, "", "tech_debt_report.parquet"},
		{"text stays on console", schema.TextOut, "", ""},
		{"explicit file", schema.JSONOut, "out/report.json", "out/report.json"},
		{"dash means stdout", schema.CSVOut, StdoutFile, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.Output = string(tt.output)
			input.OutputFile = tt.outputFile

			cfg := &Config{}
			require.NoError(t, ProcessAndValidate(cfg, input))
			assert.Equal(t, tt.expected, cfg.OutputFile)
			assert.Equal(t, schema.TextOut, cfg.Format)
		})
	}
}

func TestValidateThresholds(t *testing.T) {
	assert.NoError(t, ValidateThresholds(schema.DefaultThresholds()))
	assert.NoError(t, ValidateThresholds(schema.Thresholds{}))
	assert.Error(t, ValidateThresholds(schema.Thresholds{CommitPct: 101}))
	assert.Error(t, ValidateThresholds(schema.Thresholds{ChurnPct: -0.1}))

	nan := math.NaN()
	assert.EqualError(t, ValidateThresholds(schema.Thresholds{CommitPct: nan, ChurnPct: 1}),
		"commit-pct must be between 0 and 100 (received NaN)")
	assert.EqualError(t, ValidateThresholds(schema.Thresholds{CommitPct: 5, ChurnPct: nan}),
		"churn-pct must be between 0 and 100 (received NaN)")
	assert.Error(t, ValidateThresholds(schema.Thresholds{CommitPct: math.Inf(1), ChurnPct: 1}))
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "techdebt"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "techdebt", profile.Prefix)
}
