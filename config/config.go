// Package config declares the document generation bounds and their
// validation, plus YAML loading for tool use.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Version of the vcf-test-lib module, embedded in the ##source header line
// of generated documents via GeneratorConfig.Source.
const Version = "v0.1.0"

// GeneratorConfig bounds document generation. All fields have working
// defaults from Default; zero values are not usable directly.
type GeneratorConfig struct {
	// MinPos is the smallest allowable POS value. 0 is valid even though VCF
	// positions are 1-based; it denotes a telomere.
	MinPos int `json:"min_pos" yaml:"min_pos"`
	// MaxPos is the largest allowable POS value. Lower it below 2^29 when
	// generated documents must be tabix-indexable.
	MaxPos int `json:"max_pos" yaml:"max_pos"`
	// MaxAltAlleles caps the ALT list size of any variant.
	MaxAltAlleles int `json:"max_alt_alleles" yaml:"max_alt_alleles"`
	// MaxInfoFields caps the number of declared INFO fields.
	MaxInfoFields int `json:"max_info_fields" yaml:"max_info_fields"`
	// MaxFormatFields caps the number of declared FORMAT fields.
	MaxFormatFields int `json:"max_format_fields" yaml:"max_format_fields"`
	// MaxNumber caps integral Number tokens and the resolved count of
	// "."-numbered fields.
	MaxNumber int `json:"max_number" yaml:"max_number"`
	// MaxSamples caps the number of samples.
	MaxSamples int `json:"max_samples" yaml:"max_samples"`
	// MaxVariants caps the number of variant records.
	MaxVariants int `json:"max_variants" yaml:"max_variants"`
	// Source is the value of the ##source header line.
	Source string `json:"source" yaml:"source"`
}

// Default returns the standard generation bounds.
func Default() GeneratorConfig {
	return GeneratorConfig{
		MinPos:          0,
		MaxPos:          math.MaxInt32,
		MaxAltAlleles:   3,
		MaxInfoFields:   2,
		MaxFormatFields: 2,
		MaxNumber:       3,
		MaxSamples:      2,
		MaxVariants:     2,
		Source:          "vcf-test-lib-" + Version,
	}
}

// IsValid rejects configurations that can never produce a document. Merely
// restrictive configurations (for example key spaces that make reserved-key
// rejection slow) are not errors; they degrade generation throughput only.
func (c GeneratorConfig) IsValid() error {
	if c.MinPos < 0 {
		return &ConfigError{Type: "invalid_position_bounds", Message: "min_pos must not be negative"}
	}
	if c.MaxPos > math.MaxInt32 {
		return &ConfigError{Type: "invalid_position_bounds", Message: "max_pos must fit in 31 bits"}
	}
	if c.MaxPos < c.MinPos {
		return &ConfigError{Type: "invalid_position_bounds", Message: "max_pos must not be below min_pos"}
	}
	if c.MaxAltAlleles < 0 {
		return &ConfigError{Type: "invalid_bound", Message: "max_alt_alleles must not be negative"}
	}
	if c.MaxInfoFields < 0 {
		return &ConfigError{Type: "invalid_bound", Message: "max_info_fields must not be negative"}
	}
	if c.MaxFormatFields < 0 {
		return &ConfigError{Type: "invalid_bound", Message: "max_format_fields must not be negative"}
	}
	if c.MaxNumber < 1 {
		return &ConfigError{Type: "invalid_bound", Message: "max_number must be at least 1"}
	}
	if c.MaxSamples < 0 {
		return &ConfigError{Type: "invalid_bound", Message: "max_samples must not be negative"}
	}
	if c.MaxVariants < 1 {
		return &ConfigError{Type: "invalid_bound", Message: "max_variants must be at least 1"}
	}
	if c.MaxPos-c.MinPos+1 < c.MaxVariants {
		return &ConfigError{Type: "invalid_position_bounds", Message: "position range too small for max_variants distinct positions"}
	}
	return nil
}

// Load reads a YAML configuration file over the defaults, so files only
// need to state the bounds they change.
func Load(path string) (GeneratorConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.IsValid(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ConfigError represents configuration validation errors.
type ConfigError struct {
	Type    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Type + ": " + e.Message
}
