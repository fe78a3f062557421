package generator

import (
	"math"
	"sort"
	"strings"

	"pgregory.net/rapid"

	"github.com/variantkit/vcf-test-lib/config"
	"github.com/variantkit/vcf-test-lib/render"
	"github.com/variantkit/vcf-test-lib/types"
)

// documentPloidy is the genotype ploidy used for document assembly.
const documentPloidy = 2

// contigPattern is the contig name grammar (VCF 4.3, 1.4.7) minus a leading
// "#", which tabix treats as a comment character.
const contigPattern = `[0-9A-Za-z!$%&+./:;?@^_|~-][0-9A-Za-z!#$%&*+./:;=?@^_|~-]*`

// Contigs draws contig names.
func Contigs() *rapid.Generator[string] {
	return rapid.StringMatching(contigPattern)
}

// Positions draws variant positions in [minPos, maxPos].
func Positions(minPos, maxPos int) *rapid.Generator[int] {
	return rapid.IntRange(minPos, maxPos)
}

// IDs draws optional variant identifiers, nil for a missing ID. Identifiers
// are restricted to alphanumeric strings even though VCF allows more.
func IDs() *rapid.Generator[*string] {
	return rapid.Ptr(rapid.StringMatching(`[0-9A-Za-z]+`), true)
}

// Bases draws REF/ALT allele strings of one or more bases.
func Bases() *rapid.Generator[string] {
	return rapid.StringMatching(`[ACGTN]+`)
}

// Qualities draws optional positive 32-bit quality scores, nil for missing.
func Qualities() *rapid.Generator[*float32] {
	return rapid.Ptr(rapid.Float32Range(math.SmallestNonzeroFloat32, math.MaxFloat32), true)
}

// SampleIDs draws alphanumeric sample identifiers.
func SampleIDs() *rapid.Generator[string] {
	return rapid.StringMatching(`[0-9A-Za-z]+`)
}

// Documents draws whole single-contig documents: field declarations unique
// by lowercase key with GT first, unique sample ids, and records at unique,
// strictly increasing positions. The drawn variant-id list fixes the number
// of records.
func Documents(cfg config.GeneratorConfig) *rapid.Generator[types.Document] {
	return rapid.Custom(func(t *rapid.T) types.Document {
		infoFields := rapid.SliceOfNDistinct(
			Fields(types.CategoryInfo, cfg.MaxNumber),
			0, cfg.MaxInfoFields,
			func(f types.Field) string { return strings.ToLower(f.Key) },
		).Draw(t, "info fields")

		formatFields := types.ReorderGenotypeFirst(rapid.SliceOfNDistinct(
			FormatFieldSpecs(cfg.MaxNumber),
			0, cfg.MaxFormatFields,
			func(s types.FormatFieldSpec) string { return strings.ToLower(s.Field().Key) },
		).Draw(t, "format fields"))

		sampleIDs := rapid.SliceOfNDistinct(SampleIDs(), 0, cfg.MaxSamples, rapid.ID).Draw(t, "sample ids")

		variantIDs := rapid.SliceOfNDistinct(IDs(), 1, cfg.MaxVariants, variantIDKey).Draw(t, "variant ids")

		contig := Contigs().Draw(t, "contig")

		positions := rapid.SliceOfNDistinct(
			Positions(cfg.MinPos, cfg.MaxPos),
			len(variantIDs), len(variantIDs),
			rapid.ID,
		).Draw(t, "positions")
		sort.Ints(positions)

		records := make([]types.VariantRecord, 0, len(variantIDs))
		for i, id := range variantIDs {
			records = append(records, drawRecord(t, cfg, contig, positions[i], id, infoFields, formatFields, len(sampleIDs)))
		}

		return types.Document{
			Contig:       contig,
			InfoFields:   infoFields,
			FormatFields: formatFields,
			SampleIDs:    sampleIDs,
			Records:      records,
		}
	})
}

// VCF draws complete serialized VCF documents.
func VCF(cfg config.GeneratorConfig) *rapid.Generator[string] {
	return rapid.Map(Documents(cfg), func(doc types.Document) string {
		return render.Document(doc, cfg.Source)
	})
}

// drawRecord draws the fixed columns and field values for one variant and
// applies missing-value collapsing to INFO tokens and FORMAT columns.
func drawRecord(t *rapid.T, cfg config.GeneratorConfig, contig string, pos int, id *string, infoFields []types.Field, formatFields []types.FormatFieldSpec, sampleCount int) types.VariantRecord {
	ref := Bases().Draw(t, "ref")
	alt := rapid.SliceOfN(Bases(), 0, cfg.MaxAltAlleles).Draw(t, "alt")
	qual := Qualities().Draw(t, "qual")

	var info []string
	for _, field := range infoFields {
		v := Values(field, cfg.MaxNumber, len(alt), documentPloidy).Draw(t, "info value")
		if !v.Missing() {
			info = append(info, render.InfoToken(field.Key, v))
		}
	}

	columns := make([]render.FormatColumn, 0, len(formatFields))
	for _, spec := range formatFields {
		values := FormatValues(spec, cfg.MaxNumber, len(alt), documentPloidy)
		samples := make([]types.FieldValue, sampleCount)
		for s := range samples {
			samples[s] = values.Draw(t, "format value")
		}
		columns = append(columns, render.FormatColumn{Key: spec.Field().Key, Samples: samples})
	}
	formatKeys, sampleValues := render.CollapseFormat(columns, sampleCount)

	return types.VariantRecord{
		Contig:       contig,
		Pos:          pos,
		ID:           id,
		Ref:          ref,
		Alt:          alt,
		Qual:         qual,
		Info:         info,
		FormatKeys:   formatKeys,
		SampleValues: sampleValues,
	}
}

// variantIDKey makes optional ids comparable for uniqueness; "." cannot occur
// in an alphanumeric id, so it is a safe stand-in for missing.
func variantIDKey(id *string) string {
	if id == nil {
		return "."
	}
	return *id
}
