package generator

import (
	"math"
	"strconv"
	"strings"

	"pgregory.net/rapid"

	"github.com/variantkit/vcf-test-lib/types"
)

// ValueCounts resolves a Number token to a concrete value count for the given
// allele/ploidy context. "." re-draws a count in [1, maxNumber] on every
// value-generation call rather than fixing one per field.
func ValueCounts(number string, maxNumber, altAlleles, ploidy int) *rapid.Generator[int] {
	if number == "." {
		return rapid.IntRange(1, maxNumber)
	}
	if n, err := strconv.Atoi(number); err == nil {
		return rapid.Just(n)
	}
	switch number {
	case "A":
		return rapid.Just(altAlleles)
	case "R":
		return rapid.Just(altAlleles + 1)
	case "G":
		return rapid.Just(genotypeCount(altAlleles+1, ploidy))
	}
	panic(&UnsupportedNumberError{Number: number})
}

// genotypeCount is the number of unordered genotypes over alleles at the
// given ploidy: C(alleles+ploidy-1, ploidy).
func genotypeCount(alleles, ploidy int) int {
	n := alleles + ploidy - 1
	count := 1
	for i := 1; i <= ploidy; i++ {
		count = count * (n - ploidy + i) / i
	}
	return count
}

// Genotypes draws a genotype string: ploidy allele slots, each missing or an
// index in [0, alleleCount), joined with "|" when phased and "/" otherwise.
func Genotypes(alleleCount, ploidy int) *rapid.Generator[string] {
	indexes := rapid.SliceOfN(rapid.Ptr(rapid.IntRange(0, alleleCount-1), true), ploidy, ploidy)
	return rapid.Custom(func(t *rapid.T) string {
		slots := indexes.Draw(t, "allele indexes")
		sep := "/"
		if rapid.Bool().Draw(t, "phased") {
			sep = "|"
		}
		parts := make([]string, len(slots))
		for i, idx := range slots {
			if idx == nil {
				parts[i] = "."
			} else {
				parts[i] = strconv.Itoa(*idx)
			}
		}
		return strings.Join(parts, sep)
	})
}

// Values draws the value set for one generated (non-GT) field: a presence
// bit for flags, otherwise a list of count independent draws where every
// element may be missing. Overall-missing collapsing is the caller's job.
func Values(field types.Field, maxNumber, altAlleles, ploidy int) *rapid.Generator[types.FieldValue] {
	if field.Type == types.TypeFlag {
		return rapid.Map(rapid.Bool(), types.FlagValue)
	}
	elems := rapid.OneOf(data(field.Type), rapid.Just(types.MissingDatum()))
	counts := ValueCounts(field.Number, maxNumber, altAlleles, ploidy)
	return rapid.Custom(func(t *rapid.T) types.FieldValue {
		count := counts.Draw(t, "count")
		return types.ListValue(rapid.SliceOfN(elems, count, count).Draw(t, "values"))
	})
}

// FormatValues draws the value set for one FORMAT field spec for one sample.
// The reserved GT spec yields a one-element list holding a genotype over
// altAlleles+1 alleles.
func FormatValues(spec types.FormatFieldSpec, maxNumber, altAlleles, ploidy int) *rapid.Generator[types.FieldValue] {
	if spec.IsGenotype() {
		return rapid.Map(Genotypes(altAlleles+1, ploidy), func(gt string) types.FieldValue {
			return types.ListValue([]types.Datum{types.NewDatum(gt)})
		})
	}
	return Values(spec.Field(), maxNumber, altAlleles, ploidy)
}

// data draws one rendered, non-missing value of the given type.
func data(fieldType types.FieldType) *rapid.Generator[types.Datum] {
	switch fieldType {
	case types.TypeInteger:
		// The lowest 8 int32 values are reserved sentinels in VCF binary
		// encodings and must not be emitted.
		return rapid.Map(rapid.Int32Range(math.MinInt32+8, math.MaxInt32), func(v int32) types.Datum {
			return types.NewDatum(strconv.FormatInt(int64(v), 10))
		})
	case types.TypeFloat:
		return rapid.Map(floats(), func(v float32) types.Datum {
			return types.NewDatum(strconv.FormatFloat(float64(v), 'g', -1, 32))
		})
	case types.TypeCharacter:
		return rapid.Map(rapid.StringMatching(`[0-9A-Za-z]`), types.NewDatum)
	case types.TypeString:
		return rapid.Map(rapid.StringMatching(`[0-9A-Za-z]+`), types.NewDatum)
	}
	panic(&UnsupportedTypeError{Type: string(fieldType)})
}

// floats draws 32-bit floats including the infinities and NaN, which VCF
// permits for Float fields.
func floats() *rapid.Generator[float32] {
	return rapid.OneOf(
		rapid.Float32(),
		rapid.SampledFrom([]float32{
			float32(math.Inf(1)),
			float32(math.Inf(-1)),
			float32(math.NaN()),
		}),
	)
}
