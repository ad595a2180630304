// =============================================================================
// TOON to JSON Converter - File Manager Utility
// =============================================================================
//
// This module provides the file management utilities shared by the CLI
// commands:
//   - Input file discovery
//   - Directory management
//   - Error log generation
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the input archive after successful
//     processing (handled by the converter)
//   - Failed files remain in their original location
//   - Error logs are created in the output directory
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DISCOVERY
// =============================================================================

// DiscoverFiles scans a directory tree for files with the given extension
// (e.g. ".toon") and returns their paths.
func DiscoverFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	return files, nil
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates every listed directory that does not exist yet.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// ERROR LOGGING
// =============================================================================

// WriteErrorLog writes the collected per-file error messages to a uniquely
// named log file in the output directory and returns its path.
func WriteErrorLog(outputDir string, errors []string) (string, error) {
	name := fmt.Sprintf("errors_%s_%s.log",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8],
	)
	path := filepath.Join(outputDir, name)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Processing errors (%d)\n", len(errors)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC3339)))
	for _, e := range errors {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}

	return path, nil
}
