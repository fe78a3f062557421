package generator

import (
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/variantkit/vcf-test-lib/types"
)

func TestValueCountsLiterals(t *testing.T) {
	testCases := []struct {
		number     string
		altAlleles int
		ploidy     int
		expected   int
	}{
		{"0", 2, 2, 0},
		{"1", 2, 2, 1},
		{"4", 2, 2, 4},
		{"A", 3, 2, 3},
		{"R", 3, 2, 4},
		{"A", 0, 2, 0},
		{"R", 0, 2, 1},
		// G: unordered genotypes over altAlleles+1 alleles at given ploidy
		{"G", 1, 2, 3}, // C(3,2)
		{"G", 2, 2, 6}, // C(4,2)
		{"G", 0, 2, 1},
		{"G", 2, 1, 3},
	}

	for _, tc := range testCases {
		got := ValueCounts(tc.number, 3, tc.altAlleles, tc.ploidy).Example(0)
		if got != tc.expected {
			t.Errorf("ValueCounts(%q, alt=%d, ploidy=%d) = %d, expected %d",
				tc.number, tc.altAlleles, tc.ploidy, got, tc.expected)
		}
	}
}

func TestValueCountsDotRedrawsWithinBound(t *testing.T) {
	const maxNumber = 3
	counts := ValueCounts(".", maxNumber, 1, 2)
	rapid.Check(t, func(t *rapid.T) {
		n := counts.Draw(t, "count")
		if n < 1 || n > maxNumber {
			t.Fatalf("Count %d outside [1, %d]", n, maxNumber)
		}
	})
}

func TestValueCountsUnsupportedNumberPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic for unsupported number token")
		}
		err, ok := r.(*UnsupportedNumberError)
		if !ok {
			t.Fatalf("Expected *UnsupportedNumberError, got %T", r)
		}
		if err.Number != "Z" {
			t.Errorf("Expected number Z in error, got %q", err.Number)
		}
	}()
	ValueCounts("Z", 3, 1, 2)
}

func TestGenotypeCount(t *testing.T) {
	testCases := []struct {
		alleles  int
		ploidy   int
		expected int
	}{
		{1, 1, 1},
		{1, 2, 1},
		{2, 2, 3},
		{3, 2, 6},
		{4, 2, 10},
		{3, 3, 10},
		{2, 4, 5},
	}

	for _, tc := range testCases {
		if got := genotypeCount(tc.alleles, tc.ploidy); got != tc.expected {
			t.Errorf("genotypeCount(%d, %d) = %d, expected %d", tc.alleles, tc.ploidy, got, tc.expected)
		}
	}
}

func TestGenotypes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		alleleCount := rapid.IntRange(1, 5).Draw(t, "allele count")
		ploidy := rapid.IntRange(1, 4).Draw(t, "ploidy")

		gt := Genotypes(alleleCount, ploidy).Draw(t, "genotype")

		if strings.Contains(gt, "|") && strings.Contains(gt, "/") {
			t.Fatalf("Genotype %q mixes phased and unphased separators", gt)
		}
		tokens := strings.FieldsFunc(gt, func(r rune) bool { return r == '|' || r == '/' })
		if len(tokens) != ploidy {
			t.Fatalf("Genotype %q has %d tokens, expected %d", gt, len(tokens), ploidy)
		}
		for _, token := range tokens {
			if token == "." {
				continue
			}
			idx, err := strconv.Atoi(token)
			if err != nil {
				t.Fatalf("Genotype token %q is neither missing nor an index", token)
			}
			if idx < 0 || idx >= alleleCount {
				t.Fatalf("Allele index %d outside [0, %d)", idx, alleleCount)
			}
		}
	})
}

func TestValuesIntegerSingle(t *testing.T) {
	field := types.Field{Category: types.CategoryInfo, Key: "I1", Type: types.TypeInteger, Number: "1"}
	values := Values(field, 3, 1, 2)
	rapid.Check(t, func(t *rapid.T) {
		v := values.Draw(t, "value")

		if v.IsFlag() {
			t.Fatal("Integer field should yield a value list")
		}
		data := v.Data()
		if len(data) != 1 {
			t.Fatalf("Expected exactly 1 value, got %d", len(data))
		}
		if data[0].Missing() {
			return
		}
		if _, err := strconv.ParseInt(data[0].String(), 10, 32); err != nil {
			t.Fatalf("Value %q is not a 32-bit integer", data[0])
		}
	})
}

func TestValuesRespectResolvedCount(t *testing.T) {
	field := types.Field{Category: types.CategoryInfo, Key: "X1", Type: types.TypeString, Number: "A"}
	rapid.Check(t, func(t *rapid.T) {
		altAlleles := rapid.IntRange(0, 3).Draw(t, "alt alleles")
		v := Values(field, 3, altAlleles, 2).Draw(t, "value")
		if len(v.Data()) != altAlleles {
			t.Fatalf("Number A with %d alt alleles yielded %d values", altAlleles, len(v.Data()))
		}
	})
}

func TestValuesFlag(t *testing.T) {
	field := types.Field{Category: types.CategoryInfo, Key: "fl", Type: types.TypeFlag, Number: "0"}
	values := Values(field, 3, 1, 2)
	rapid.Check(t, func(t *rapid.T) {
		v := values.Draw(t, "value")
		if !v.IsFlag() {
			t.Fatal("Flag field should yield a flag value, not a list")
		}
		if v.Render() != "" {
			t.Fatalf("Flags carry no value text, got %q", v.Render())
		}
	})
}

func TestValuesCharacter(t *testing.T) {
	field := types.Field{Category: types.CategoryFormat, Key: "ch", Type: types.TypeCharacter, Number: "2"}
	values := Values(field, 3, 1, 2)
	rapid.Check(t, func(t *rapid.T) {
		v := values.Draw(t, "value")
		for _, d := range v.Data() {
			if d.Missing() {
				continue
			}
			if len(d.String()) != 1 {
				t.Fatalf("Character value %q must be a single code point", d)
			}
		}
	})
}

func TestValuesUnsupportedTypePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic for unsupported type")
		}
		if _, ok := r.(*UnsupportedTypeError); !ok {
			t.Fatalf("Expected *UnsupportedTypeError, got %T", r)
		}
	}()
	Values(types.Field{Category: types.CategoryInfo, Key: "bad", Type: types.FieldType("Blob"), Number: "1"}, 3, 1, 2)
}

func TestFormatValuesGenotype(t *testing.T) {
	spec := types.ReservedGenotype()
	rapid.Check(t, func(t *rapid.T) {
		altAlleles := rapid.IntRange(0, 3).Draw(t, "alt alleles")
		v := FormatValues(spec, 3, altAlleles, 2).Draw(t, "value")

		data := v.Data()
		if len(data) != 1 {
			t.Fatalf("GT should yield a one-element list, got %d", len(data))
		}
		tokens := strings.FieldsFunc(data[0].String(), func(r rune) bool { return r == '|' || r == '/' })
		if len(tokens) != 2 {
			t.Fatalf("Genotype %q should have ploidy 2", data[0])
		}
		for _, token := range tokens {
			if token == "." {
				continue
			}
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx > altAlleles {
				t.Fatalf("Allele index %q outside [0, %d]", token, altAlleles)
			}
		}
	})
}
