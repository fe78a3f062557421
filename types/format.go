package types

// genotypeField is the fixed declaration of the reserved GT field. GT has
// special value syntax and must be serialized first among FORMAT fields.
var genotypeField = Field{
	Category:    CategoryFormat,
	Key:         "GT",
	Type:        TypeString,
	Number:      "1",
	Description: "Genotype",
}

// FormatFieldSpec is a tagged choice between the reserved genotype field and
// a generated FORMAT field, so GT handling never relies on object identity.
type FormatFieldSpec struct {
	genotype bool
	field    Field
}

// ReservedGenotype returns the spec for the reserved GT field.
func ReservedGenotype() FormatFieldSpec {
	return FormatFieldSpec{genotype: true, field: genotypeField}
}

// GeneratedFormat wraps a generated FORMAT field.
func GeneratedFormat(f Field) FormatFieldSpec {
	return FormatFieldSpec{field: f}
}

// IsGenotype reports whether the spec is the reserved GT field.
func (s FormatFieldSpec) IsGenotype() bool {
	return s.genotype
}

// Field returns the declared field metadata; for the reserved genotype spec
// this is the fixed GT declaration.
func (s FormatFieldSpec) Field() Field {
	return s.field
}

// ReorderGenotypeFirst returns a new slice with the GT spec (if present)
// moved to the front and the relative order of all other specs preserved.
// The input slice is never mutated.
func ReorderGenotypeFirst(specs []FormatFieldSpec) []FormatFieldSpec {
	out := make([]FormatFieldSpec, 0, len(specs))
	for _, s := range specs {
		if s.IsGenotype() {
			out = append(out, s)
		}
	}
	for _, s := range specs {
		if !s.IsGenotype() {
			out = append(out, s)
		}
	}
	return out
}
