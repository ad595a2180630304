// =============================================================================
// TOON to JSON Converter - Configuration Module
// =============================================================================
//
// This module loads and manages the application's configuration files.
// It handles both the main application configuration and dataset-specific
// configurations.
//
// CONFIGURATION FILES:
//   1. Main Config (config.yaml): Global application settings
//   2. Dataset Configs (configs/*.yaml): Per-dataset output rules
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Modular: Each dataset has its own configuration file
//   - Extensible: New datasets can be added without code changes
//   - Defaulted: Missing settings fall back to sensible defaults on load
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/TOON-to-JSON-conversion/pkg/utils"
)

// Output format values accepted by MainConfig.OutputFormat and
// OutputSettings.Format.
const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatBoth = "both"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
// This is loaded from the main config.yaml file.
type MainConfig struct {
	// InputDir is the directory where input TOON files are placed.
	// The application scans this directory for files to process.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where generated output files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is the directory where processed TOON files are
	// moved. Files are only moved here after successful processing.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// ConfigsDir is the directory containing dataset-specific
	// configurations. Each YAML file in this directory represents one
	// dataset's rules.
	// Default: "./configs"
	ConfigsDir string `yaml:"configs_dir"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// OutputFormat selects what is written per input file: "json",
	// "xlsx", or "both". Dataset configs may override it.
	// Default: "json"
	OutputFormat string `yaml:"output_format"`

	// NameFormat defines the format for output file names, without the
	// extension (the writer appends .json or .xlsx).
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {dataset}   - Dataset code
	// Default: "{uuid}"
	NameFormat string `yaml:"name_format"`

	// MaxConcurrency is the maximum number of files to process
	// concurrently. Set to 1 for sequential processing.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError determines whether to continue processing other
	// files if one file fails.
	// Default: true
	ContinueOnError bool `yaml:"continue_on_error"`
}

// =============================================================================
// DATASET CONFIGURATION STRUCTURE
// =============================================================================

// DatasetConfig holds the configuration for one dataset: which input files
// belong to it and how its output should be written.
type DatasetConfig struct {
	// DatasetName is the human-readable name of the dataset.
	// Used in logs and error messages.
	DatasetName string `yaml:"dataset_name"`

	// DatasetCode is a short code for the dataset. It feeds the
	// {dataset} placeholder in output file names.
	DatasetCode string `yaml:"dataset_code"`

	// FileMatchingPatterns is a list of glob patterns to match input
	// files. If a file name matches any of these patterns, this
	// configuration is used.
	// Examples:
	//   - "telemetry_*.toon"
	//   - "*_events_*.toon"
	FileMatchingPatterns []string `yaml:"file_matching_patterns"`

	// Output contains per-dataset output settings, overriding the
	// main configuration where set.
	Output OutputSettings `yaml:"output"`
}

// OutputSettings contains per-dataset output options.
type OutputSettings struct {
	// Format overrides MainConfig.OutputFormat for this dataset:
	// "json", "xlsx", or "both". Empty means "use the main setting".
	Format string `yaml:"format"`

	// PrettyJSON enables indented JSON output for this dataset.
	// Default: false (compact)
	PrettyJSON bool `yaml:"pretty_json"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file, applies
// defaults, and makes sure the configured directories exist.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.ConfigsDir == "" {
		config.ConfigsDir = "./configs"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.OutputFormat == "" {
		config.OutputFormat = FormatJSON
	}
	if config.NameFormat == "" {
		config.NameFormat = "{uuid}"
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}
}

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	switch config.OutputFormat {
	case FormatJSON, FormatXLSX, FormatBoth:
	default:
		return fmt.Errorf("unknown output_format: %s", config.OutputFormat)
	}

	// Create any missing directories.
	return utils.EnsureDirectories(
		config.InputDir,
		config.OutputDir,
		config.InputArchiveDir,
		config.ConfigsDir,
	)
}

// LoadDatasetConfigs loads all dataset configurations from a directory.
// The returned map is keyed by dataset code (falling back to the file
// name when no code is set).
func LoadDatasetConfigs(configsDir string) (map[string]*DatasetConfig, error) {
	configs := make(map[string]*DatasetConfig)

	files, err := filepath.Glob(filepath.Join(configsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list config files: %w", err)
	}

	// Also check for the .yml extension.
	ymlFiles, err := filepath.Glob(filepath.Join(configsDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list config files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		config, err := loadDatasetConfig(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}

		key := config.DatasetCode
		if key == "" {
			key = filepath.Base(file)
		}
		configs[key] = config
	}

	return configs, nil
}

// loadDatasetConfig loads a single dataset configuration file.
func loadDatasetConfig(filePath string) (*DatasetConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config DatasetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	if config.Output.Format != "" {
		switch config.Output.Format {
		case FormatJSON, FormatXLSX, FormatBoth:
		default:
			return nil, fmt.Errorf("unknown output format: %s", config.Output.Format)
		}
	}

	return &config, nil
}
