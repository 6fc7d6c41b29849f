// Package cmd defines the command-line interface for techdebt.
package cmd

import (
	"github.com/huangsam/techdebt/internal/contract"
	"github.com/huangsam/techdebt/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(criteriaCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("input", "i", "", "Path to the graph JSON document (alternative to the positional argument)")
	rootCmd.PersistentFlags().Float64("commit-pct", schema.DefaultCommitPctThreshold, "Flag files touched by at least this percent of an era's commits")
	rootCmd.PersistentFlags().Float64("churn-pct", schema.DefaultChurnPctThreshold, "Flag files holding at least this percent of an era's churn")
	rootCmd.PersistentFlags().String("output", string(schema.JSONOut), "Report format: json or csv or parquet or text")
	rootCmd.PersistentFlags().String("output-file", "", "Path to write the report to ('-' for stdout)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail when any repository could not be classified")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().Int("max-findings", contract.DefaultMaxFindings, "Number of findings tolerated before the check fails")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of criteriaCmd to Viper
	criteriaCmd.Flags().String("format", string(schema.TextOut), "Criteria format: text or json or csv")
	if err := viper.BindPFlags(criteriaCmd.Flags()); err != nil {
		contract.LogFatal("Error binding criteria flags", err)
	}
}
