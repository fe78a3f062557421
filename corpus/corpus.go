// Package corpus materializes generated VCF documents as fixture files on
// disk, for test harnesses and non-Go consumers that read fixtures from a
// directory instead of drawing them in-process.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/variantkit/vcf-test-lib/config"
	"github.com/variantkit/vcf-test-lib/generator"
)

// Writer materializes a corpus of fixture files into OutputDir.
type Writer struct {
	OutputDir string
	Options   WriteOptions
}

// WriteOptions controls corpus materialization.
type WriteOptions struct {
	Count   int    // Number of fixture files to write
	Seed    int    // Base seed; file i is generated from Seed+i
	Prefix  string // File name prefix, "fixture" if empty
	Verbose bool   // Enable verbose output
}

// NewWriter creates a corpus writer.
func NewWriter(outputDir string, opts WriteOptions) *Writer {
	if opts.Count <= 0 {
		opts.Count = 1
	}
	if opts.Prefix == "" {
		opts.Prefix = "fixture"
	}
	return &Writer{
		OutputDir: outputDir,
		Options:   opts,
	}
}

// WriteAll generates Options.Count documents and writes each to its own
// file. Generation is deterministic: the same configuration, seed, and count
// always produce the same corpus. Returns the written file paths.
func (w *Writer) WriteAll(cfg config.GeneratorConfig) ([]string, error) {
	if err := cfg.IsValid(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	if err := os.MkdirAll(w.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	docs := generator.VCF(cfg)
	paths := make([]string, 0, w.Options.Count)
	for i := 0; i < w.Options.Count; i++ {
		doc := docs.Example(w.Options.Seed + i)
		name := fmt.Sprintf("%s-%04d.vcf", w.Options.Prefix, i)
		path := filepath.Join(w.OutputDir, name)
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
		if w.Options.Verbose {
			fmt.Printf("Wrote fixture: %s\n", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
