// main is the entry point for the techdebt CLI.
package main

import (
	"github.com/huangsam/techdebt/cmd"
	"github.com/huangsam/techdebt/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
