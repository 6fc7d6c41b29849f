// Package main provides a performance benchmarking tool for the techdebt CLI.
// It generates synthetic graph documents of increasing size, runs the report and
// check commands against each one several times, and writes the timings as CSV
// for performance analysis and documentation.
//
// Prerequisites:
// - techdebt binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated documents and reports (defaults to a temp dir)
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the timings of one command against one document size.
type BenchmarkResult struct {
	Size    string
	Command string
	Nodes   int
	MinTime string
	AvgTime string
}

// DocumentShape describes one synthetic input document.
type DocumentShape struct {
	Name  string
	Repos int
	Eras  int
	Nodes int // Nodes per era
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Timeout time.Duration
	Runs    int
	Shapes  []DocumentShape
}

func main() {
	workDir := ""
	switch len(os.Args) {
	case 1:
		dir, err := os.MkdirTemp("", "techdebt-benchmark-*")
		if err != nil {
			fmt.Printf("Failed to create work dir: %v\n", err)
			os.Exit(1)
		}
		workDir = dir
	case 2:
		workDir = os.Args[1]
	default:
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: workDir,
		Timeout: 2 * time.Minute,
		Runs:    5,
		Shapes: []DocumentShape{
			{Name: "small", Repos: 1, Eras: 4, Nodes: 200},
			{Name: "medium", Repos: 4, Eras: 10, Nodes: 2000},
			{Name: "large", Repos: 10, Eras: 20, Nodes: 10000},
		},
	}

	if _, err := exec.LookPath("techdebt"); err != nil {
		fmt.Printf("Prerequisites check failed: techdebt binary not found in PATH\n")
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// generateDocument writes a synthetic graph document and returns its path.
func generateDocument(dir string, shape DocumentShape) (string, error) {
	rng := rand.New(rand.NewSource(int64(shape.Repos*shape.Eras*shape.Nodes + 1)))

	repos := make([]map[string]any, 0, shape.Repos)
	for r := 0; r < shape.Repos; r++ {
		eras := make([]map[string]any, 0, shape.Eras)
		total := 0
		for e := 0; e < shape.Eras; e++ {
			commits := 50 + rng.Intn(500)
			total += commits
			nodes := make([]map[string]any, 0, shape.Nodes)
			for n := 0; n < shape.Nodes; n++ {
				nodes = append(nodes, map[string]any{
					"path":         fmt.Sprintf("pkg%d/file_%d.go", n%50, n),
					"commit_count": 1 + rng.Intn(commits/5+1),
					"additions":    rng.Intn(2000),
					"deletions":    rng.Intn(800),
				})
			}
			eras = append(eras, map[string]any{
				"era_index":      e,
				"commits_in_era": commits,
				"reset_commit":   fmt.Sprintf("%040x", rng.Int63()),
				"nodes":          nodes,
			})
		}
		repos = append(repos, map[string]any{
			"repo":                   fmt.Sprintf("bench/repo-%d", r),
			"total_commits_analyzed": total,
			"eras":                   eras,
		})
	}

	path := filepath.Join(dir, shape.Name+".json")
	data, err := json.Marshal(repos)
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0o644)
}

// runBenchmarks executes all benchmark tests across configured document shapes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d shapes, %v timeout, %d runs\n", len(config.Shapes), config.Timeout, config.Runs)

	for _, shape := range config.Shapes {
		docPath, err := generateDocument(config.WorkDir, shape)
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", shape.Name, err)
			continue
		}
		nodes := shape.Repos * shape.Eras * shape.Nodes
		fmt.Printf("Benchmarking %s (%d nodes)\n", shape.Name, nodes)

		reportFile := filepath.Join(config.WorkDir, shape.Name+"_report.json")
		results = append(results,
			runBenchmarkSuite(config, shape.Name, nodes, "report", []string{"report", docPath, "--output-file", reportFile}),
			runBenchmarkSuite(config, shape.Name, nodes, "check", []string{"check", docPath, "--max-findings", "1000000000"}),
		)
	}

	return results
}

// runBenchmarkSuite runs one command several times and summarizes its timings
func runBenchmarkSuite(config BenchmarkConfig, size string, nodes int, command string, args []string) BenchmarkResult {
	times := runBenchmark(config, command, args)
	result := BenchmarkResult{Size: size, Command: command, Nodes: nodes, MinTime: "TIMEOUT", AvgTime: "TIMEOUT"}
	if len(times) == 0 {
		return result
	}

	minTime, sum := times[0], 0.0
	for _, t := range times {
		sum += t
		if t < minTime {
			minTime = t
		}
	}
	result.MinTime = fmt.Sprintf("%.3fs", minTime)
	result.AvgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
	fmt.Printf("  %s: min %s, avg %s\n", command, result.MinTime, result.AvgTime)
	return result
}

// runBenchmark executes a techdebt command multiple times and returns the successful timings
func runBenchmark(config BenchmarkConfig, command string, args []string) []float64 {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		output, err := exec.CommandContext(ctx, "techdebt", args...).CombinedOutput()
		elapsed := time.Since(start).Seconds()
		cancel()

		if err == nil && isSuccess(output, command) {
			times = append(times, elapsed)
		}
	}
	return times
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)
	if command == "check" {
		return strings.Contains(outputStr, "within budget")
	}
	return strings.Contains(outputStr, "Classification completed in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/techdebt_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"size", "cmd", "nodes", "min_time", "avg_time"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		record := []string{result.Size, result.Command, fmt.Sprint(result.Nodes), result.MinTime, result.AvgTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range []string{"report", "check"} {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-8s (%8d nodes): min %s, avg %s\n", result.Size, result.Nodes, result.MinTime, result.AvgTime)
			}
		}
	}
}
