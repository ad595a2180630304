// =============================================================================
// TOON to JSON Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, the main command for converting
// TOON files. It orchestrates the whole run across the input directory.
//
// COMMAND USAGE:
//   toonconv process [flags]
//
// FLAGS:
//   --single      : Process only a single file (specify with --file)
//   --file        : Path to a specific file to process (used with --single)
//   --dataset     : Process only files matching a specific dataset
//
// PROCESSING PIPELINE:
//   1. Load configuration files
//   2. Discover TOON files in the input directory
//   3. Match each file to a dataset configuration (optional)
//   4. For each file (concurrently): parse, write outputs, archive
//   5. Generate summary report and error log
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/config"
	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/converter"
	"github.com/ginjaninja78/TOON-to-JSON-conversion/pkg/utils"
)

// singleFile indicates whether to process only a single file.
var singleFile bool

// filePath is the path to a specific file to process (used with --single).
var filePath string

// dataset filters processing to a specific dataset code.
var dataset string

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process TOON files and convert them to JSON/XLSX",
	Long: `The process command scans the input directory for TOON files, matches them
to the appropriate dataset configuration, and converts each one to the
configured output format.

Processing is done concurrently. Each file is processed independently, and
errors in one file do not affect the processing of others.

On successful processing:
  - The generated output is placed in the output directory
  - The original TOON file is moved to the input archive
  - A summary report is printed

On error:
  - An error log is created in the output directory
  - The original TOON file remains in the input directory
  - Processing continues for other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

// init registers the process command and its local flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&singleFile,
		"single",
		false,
		"Process only a single file (use with --file)",
	)

	processCmd.Flags().StringVar(
		&filePath,
		"file",
		"",
		"Path to a specific file to process (used with --single)",
	)

	processCmd.Flags().StringVar(
		&dataset,
		"dataset",
		"",
		"Process only files for a specific dataset code",
	)
}

// runProcess orchestrates the conversion run.
func runProcess() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== TOON to JSON Converter ===")
	fmt.Println("Loading configuration...")

	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	datasetConfigs, err := config.LoadDatasetConfigs(mainConfig.ConfigsDir)
	if err != nil {
		return fmt.Errorf("failed to load dataset configs: %w", err)
	}

	fmt.Printf("Loaded %d dataset configuration(s)\n", len(datasetConfigs))

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	fmt.Println("Discovering input files...")

	var inputFiles []string
	if singleFile {
		if filePath == "" {
			return fmt.Errorf("--single requires --file")
		}
		inputFiles = []string{filePath}
	} else {
		inputFiles, err = utils.DiscoverFiles(mainConfig.InputDir, ".toon")
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
	}

	// Apply the dataset filter, when given.
	if dataset != "" {
		inputFiles = filterByDataset(inputFiles, dataset, datasetConfigs)
	}

	if len(inputFiles) == 0 {
		fmt.Println("No TOON files found to process.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// =========================================================================
	// STEP 3: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// A semaphore bounds concurrency to the configured maximum; a buffered
	// channel collects per-file results.

	fmt.Println("Processing files...")

	var wg sync.WaitGroup
	results := make(chan converter.Result, len(inputFiles))
	sem := make(chan struct{}, mainConfig.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)

		go func(path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			conv := converter.New(path, findMatchingDataset(path, datasetConfigs), mainConfig)
			results <- conv.Run()
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS AND GENERATE SUMMARY
	// =========================================================================

	var successCount, errorCount, mismatchCount int
	var errors []string

	for result := range results {
		if result.Success {
			successCount++
			mismatchCount += result.Stats.CountMismatches
			for _, out := range result.OutputFiles {
				fmt.Printf("  ✓ %s -> %s\n", filepath.Base(result.FilePath), out)
			}
		} else {
			errorCount++
			errors = append(errors, fmt.Sprintf("%s: %v", filepath.Base(result.FilePath), result.Error))
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
	}

	// =========================================================================
	// STEP 5: PRINT SUMMARY
	// =========================================================================

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:      %d\n", len(inputFiles))
	fmt.Printf("Successful:       %d\n", successCount)
	fmt.Printf("Errors:           %d\n", errorCount)
	fmt.Printf("Count mismatches: %d\n", mismatchCount)
	fmt.Printf("Time elapsed:     %s\n", elapsed)

	if errorCount > 0 {
		logPath, logErr := utils.WriteErrorLog(mainConfig.OutputDir, errors)
		if logErr != nil {
			fmt.Printf("Failed to write error log: %v\n", logErr)
		} else {
			fmt.Printf("Errors logged to: %s\n", logPath)
		}
	}

	return nil
}

// findMatchingDataset finds the dataset configuration whose file-matching
// patterns cover the given file. It returns nil when none match; the
// converter then falls back to the main configuration's settings.
func findMatchingDataset(path string, configs map[string]*config.DatasetConfig) *config.DatasetConfig {
	fileName := filepath.Base(path)

	for _, dc := range configs {
		for _, pattern := range dc.FileMatchingPatterns {
			matched, err := filepath.Match(pattern, fileName)
			if err != nil {
				// Invalid pattern, skip it.
				continue
			}
			if matched {
				return dc
			}
		}
	}

	return nil
}

// filterByDataset keeps only the files that match the named dataset's
// patterns.
func filterByDataset(files []string, code string, configs map[string]*config.DatasetConfig) []string {
	dc, ok := configs[code]
	if !ok {
		return nil
	}

	var kept []string
	for _, f := range files {
		if findMatchingDataset(f, map[string]*config.DatasetConfig{code: dc}) != nil {
			kept = append(kept, f)
		}
	}
	return kept
}
