// Package render serializes drawn VCF documents: the metadata header block
// and tab-separated record lines, including missing-value collapsing.
package render

import (
	"fmt"
	"strings"

	"github.com/variantkit/vcf-test-lib/types"
)

// FileFormatLine is the fixed first line of every generated document.
const FileFormatLine = "##fileformat=VCFv4.3"

// passFilterLine is emitted even though records never populate FILTER;
// a declared PASS filter keeps strict header validators happy.
const passFilterLine = `##FILTER=<ID=PASS,Description="All filters passed">`

// HeaderBuilder serializes the header block. Source is the value of the
// ##source line and is injected by configuration rather than read from any
// process-wide state.
type HeaderBuilder struct {
	Source string
}

// Build renders the complete header: fileformat, FILTER=PASS, source,
// contigs, INFO then FORMAT metadata lines, and the column header line.
// FORMAT and sample columns are appended only when sampleIDs is non-empty.
func (hb HeaderBuilder) Build(contigs []string, infoFields []types.Field, formatFields []types.FormatFieldSpec, sampleIDs []string) string {
	var b strings.Builder

	b.WriteString(FileFormatLine + "\n")
	b.WriteString(passFilterLine + "\n")
	fmt.Fprintf(&b, "##source=%s\n", hb.Source)

	for _, contig := range contigs {
		fmt.Fprintf(&b, "##contig=<ID=%s>\n", contig)
	}
	for _, field := range infoFields {
		b.WriteString(field.HeaderLine() + "\n")
	}
	for _, spec := range formatFields {
		b.WriteString(spec.Field().HeaderLine() + "\n")
	}

	b.WriteString(strings.Join(fixedColumns(), "\t"))
	if len(sampleIDs) > 0 {
		b.WriteString("\tFORMAT")
		for _, id := range sampleIDs {
			b.WriteString("\t" + id)
		}
	}
	b.WriteString("\n")

	return b.String()
}

// fixedColumns returns the eight mandatory column names.
func fixedColumns() []string {
	return []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}
}
