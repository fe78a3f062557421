// Package generator provides rapid strategies that draw spec-conformant VCF
// building blocks: field metadata, typed values, genotypes, and whole
// documents. Every strategy is deterministic for a fixed draw sequence, so
// rapid can replay and shrink generated documents.
package generator

import (
	"strconv"

	"pgregory.net/rapid"

	"github.com/variantkit/vcf-test-lib/types"
)

// identifierPattern is the VCF field key grammar (VCF 4.3, 1.6.1).
const identifierPattern = `[A-Za-z_][0-9A-Za-z_.]+`

// defaultDescription is attached to every generated field declaration.
const defaultDescription = "Generated field"

// FieldKeys draws keys matching the identifier grammar, rejecting reserved
// keys for the category. Rejection retries are budgeted by rapid.
func FieldKeys(category types.FieldCategory) *rapid.Generator[string] {
	mustSupportCategory(category)
	return rapid.StringMatching(identifierPattern).Filter(func(key string) bool {
		return !types.IsReservedKey(category, key)
	})
}

// FieldTypes draws a value type valid for the category; FORMAT fields cannot
// be flags.
func FieldTypes(category types.FieldCategory) *rapid.Generator[types.FieldType] {
	switch category {
	case types.CategoryInfo:
		return rapid.SampledFrom(types.AllTypes())
	case types.CategoryFormat:
		return rapid.SampledFrom([]types.FieldType{
			types.TypeInteger,
			types.TypeFloat,
			types.TypeCharacter,
			types.TypeString,
		})
	}
	panic(&UnsupportedCategoryError{Category: string(category)})
}

// FieldNumbers draws a Number token valid for the category: INFO may use 0
// (flags) but never G; FORMAT may use G but never 0.
func FieldNumbers(category types.FieldCategory, maxNumber int) *rapid.Generator[string] {
	switch category {
	case types.CategoryInfo:
		return rapid.OneOf(
			rapid.Map(rapid.IntRange(0, maxNumber), strconv.Itoa),
			rapid.SampledFrom([]string{"A", "R", "."}),
		)
	case types.CategoryFormat:
		return rapid.OneOf(
			rapid.Map(rapid.IntRange(1, maxNumber), strconv.Itoa),
			rapid.SampledFrom([]string{"A", "R", "G", "."}),
		)
	}
	panic(&UnsupportedCategoryError{Category: string(category)})
}

// Fields draws a generated field for the category, holding the cross-field
// invariant that Flag type and Number "0" imply each other.
func Fields(category types.FieldCategory, maxNumber int) *rapid.Generator[types.Field] {
	keys := FieldKeys(category)
	fieldTypes := FieldTypes(category)
	numbers := FieldNumbers(category, maxNumber)
	return rapid.Custom(func(t *rapid.T) types.Field {
		return types.Field{
			Category:    category,
			Key:         keys.Draw(t, "key"),
			Type:        fieldTypes.Draw(t, "type"),
			Number:      numbers.Draw(t, "number"),
			Description: defaultDescription,
		}
	}).Filter(func(f types.Field) bool {
		return (f.Type == types.TypeFlag) == (f.Number == "0")
	})
}

// FormatFieldSpecs draws a FORMAT field spec: either the reserved GT field
// or a generated field.
func FormatFieldSpecs(maxNumber int) *rapid.Generator[types.FormatFieldSpec] {
	return rapid.OneOf(
		rapid.Just(types.ReservedGenotype()),
		rapid.Map(Fields(types.CategoryFormat, maxNumber), types.GeneratedFormat),
	)
}

// mustSupportCategory rejects unknown categories up front.
func mustSupportCategory(category types.FieldCategory) {
	switch category {
	case types.CategoryInfo, types.CategoryFormat:
	default:
		panic(&UnsupportedCategoryError{Category: string(category)})
	}
}
