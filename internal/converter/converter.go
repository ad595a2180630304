// =============================================================================
// TOON to JSON Converter - Converter Module
// =============================================================================
//
// This module contains the per-file conversion logic. It orchestrates the
// pipeline for a single file, from TOON parsing to output generation.
//
// CONVERSION PIPELINE:
//   1. Read the input TOON file
//   2. Parse it into a document (diagnostics go to the logger)
//   3. Resolve the output settings (dataset overrides main config)
//   4. Generate the JSON and/or XLSX output files
//   5. Archive the processed input file
//
// CONCURRENCY:
//   Each file is processed in its own goroutine. The converter holds no
//   shared mutable state, so multiple files can be processed concurrently.
//
// =============================================================================

package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/config"
	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/jsonwriter"
	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/toon"
	"github.com/ginjaninja78/TOON-to-JSON-conversion/internal/xlsxwriter"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFiles are the paths of the generated output files.
	// Empty if processing failed.
	OutputFiles []string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed, nil otherwise.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// BlocksParsed is the number of distinct block names in the document.
	BlocksParsed int

	// RecordsParsed is the total number of records across all blocks.
	RecordsParsed int

	// CountMismatches is the number of blocks whose declared row count
	// disagreed with the parsed row count. These are warnings, never
	// errors.
	CountMismatches int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// LOGGER
// =============================================================================

// Logger is the logging interface used throughout the pipeline.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// defaultLogger is a simple logger that prints to stdout.
type defaultLogger struct{}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+msg+"\n", args...)
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of a single TOON file.
type Converter struct {
	// toonPath is the path to the input TOON file.
	toonPath string

	// datasetConfig is the dataset-specific configuration.
	// May be nil when no dataset matched; main-config settings apply.
	datasetConfig *config.DatasetConfig

	// mainConfig is the main application configuration.
	mainConfig *config.MainConfig

	// logger receives pipeline progress and parse diagnostics.
	logger Logger
}

// New creates a new Converter for one input file. datasetConfig may be nil.
func New(toonPath string, datasetConfig *config.DatasetConfig, mainConfig *config.MainConfig) *Converter {
	return &Converter{
		toonPath:      toonPath,
		datasetConfig: datasetConfig,
		mainConfig:    mainConfig,
		logger:        &defaultLogger{},
	}
}

// SetLogger replaces the default stdout logger.
func (c *Converter) SetLogger(logger Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline for the file and reports the outcome.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		FilePath: c.toonPath,
		Success:  false,
	}

	// =========================================================================
	// STEP 1: READ INPUT
	// =========================================================================

	c.logger.Info("Processing file: %s", c.toonPath)

	data, err := os.ReadFile(c.toonPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to read input: %w", err)
		return result
	}

	// =========================================================================
	// STEP 2: PARSE
	// =========================================================================
	// Parsing never fails; count mismatches surface as warnings.

	doc := toon.Parse(string(data), toon.WithDiagnostics(func(d toon.Diagnostic) {
		result.Stats.CountMismatches++
		c.logger.Warn("block %q: declared %d rows, parsed %d", d.Block, d.Declared, d.Actual)
	}))

	result.Stats.BlocksParsed = doc.Len()
	for _, name := range doc.Names() {
		result.Stats.RecordsParsed += len(doc.Records(name))
	}
	c.logger.Debug("Parsed %d blocks, %d records", result.Stats.BlocksParsed, result.Stats.RecordsParsed)

	// =========================================================================
	// STEP 3: RESOLVE OUTPUT SETTINGS
	// =========================================================================

	format, jsonOpts := c.outputSettings()

	// =========================================================================
	// STEP 4: GENERATE OUTPUT FILES
	// =========================================================================

	baseName := c.generateOutputBaseName()

	if format == config.FormatJSON || format == config.FormatBoth {
		out, err := jsonwriter.Generate(doc, jsonOpts)
		if err != nil {
			result.Error = fmt.Errorf("failed to generate JSON: %w", err)
			return result
		}

		path := filepath.Join(c.mainConfig.OutputDir, baseName+".json")
		if err := os.WriteFile(path, out, 0644); err != nil {
			result.Error = fmt.Errorf("failed to write JSON output: %w", err)
			return result
		}
		result.OutputFiles = append(result.OutputFiles, path)
		c.logger.Info("Wrote output to: %s", path)
	}

	if format == config.FormatXLSX || format == config.FormatBoth {
		path := filepath.Join(c.mainConfig.OutputDir, baseName+".xlsx")
		if err := xlsxwriter.WriteFile(doc, path); err != nil {
			result.Error = fmt.Errorf("failed to write XLSX output: %w", err)
			return result
		}
		result.OutputFiles = append(result.OutputFiles, path)
		c.logger.Info("Wrote output to: %s", path)
	}

	// =========================================================================
	// STEP 5: ARCHIVE INPUT
	// =========================================================================

	if err := c.archiveInput(); err != nil {
		// Log but don't fail: the outputs were written.
		c.logger.Warn("Failed to archive input: %v", err)
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// outputSettings resolves the effective output format and JSON options,
// letting the dataset configuration override the main one.
func (c *Converter) outputSettings() (string, jsonwriter.GenerateOptions) {
	format := c.mainConfig.OutputFormat
	opts := jsonwriter.DefaultOptions()

	if c.datasetConfig != nil {
		if c.datasetConfig.Output.Format != "" {
			format = c.datasetConfig.Output.Format
		}
		opts.Pretty = c.datasetConfig.Output.PrettyJSON
	}

	return format, opts
}

// generateOutputBaseName expands the configured name format. The extension
// is appended by the writer step.
func (c *Converter) generateOutputBaseName() string {
	name := c.mainConfig.NameFormat

	datasetCode := ""
	if c.datasetConfig != nil {
		datasetCode = c.datasetConfig.DatasetCode
	}

	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{dataset}", datasetCode)

	return name
}

// archiveInput moves the processed input file to the archive directory.
func (c *Converter) archiveInput() error {
	archivePath := filepath.Join(c.mainConfig.InputArchiveDir, filepath.Base(c.toonPath))
	if err := os.Rename(c.toonPath, archivePath); err != nil {
		return fmt.Errorf("failed to archive input file: %w", err)
	}
	return nil
}
