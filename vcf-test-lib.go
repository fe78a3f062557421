// Package vcf_test_lib generates randomized, spec-conformant VCF documents
// for use as test fixtures that exercise downstream VCF parsers and tools.
package vcf_test_lib

import (
	"pgregory.net/rapid"

	"github.com/variantkit/vcf-test-lib/config"
	"github.com/variantkit/vcf-test-lib/generator"
	"github.com/variantkit/vcf-test-lib/types"
)

// Version of the vcf-test-lib package
const Version = config.Version

// Quick constructor functions for common use cases

// DefaultConfig returns the standard generation bounds.
func DefaultConfig() config.GeneratorConfig {
	return config.Default()
}

// Documents returns a strategy drawing structured VCF documents.
func Documents(cfg config.GeneratorConfig) *rapid.Generator[types.Document] {
	return generator.Documents(cfg)
}

// VCF returns a strategy drawing complete serialized VCF documents.
func VCF(cfg config.GeneratorConfig) *rapid.Generator[string] {
	return generator.VCF(cfg)
}

// Example generates one deterministic document for the given seed, for use
// outside a property-test run.
func Example(cfg config.GeneratorConfig, seed int) string {
	return generator.VCF(cfg).Example(seed)
}
