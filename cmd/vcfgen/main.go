// Command vcfgen writes a corpus of generated VCF fixture files to a
// directory, for harnesses that feed fixtures to external VCF tools.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/variantkit/vcf-test-lib/config"
	"github.com/variantkit/vcf-test-lib/corpus"
)

func main() {
	configPath := flag.String("config", "", "optional YAML file overriding generation bounds")
	outDir := flag.String("out", "testdata/vcf", "output directory for fixture files")
	count := flag.Int("count", 10, "number of fixture files to write")
	seed := flag.Int("seed", 0, "base seed; file i is generated from seed+i")
	prefix := flag.String("prefix", "fixture", "fixture file name prefix")
	verbose := flag.Bool("v", false, "enable verbose output")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	writer := corpus.NewWriter(*outDir, corpus.WriteOptions{
		Count:   *count,
		Seed:    *seed,
		Prefix:  *prefix,
		Verbose: *verbose,
	})

	paths, err := writer.WriteAll(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote %d fixtures to %s\n", len(paths), *outDir)
}
