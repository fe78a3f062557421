// Package types defines the VCF data model used by the generator:
// field metadata, per-field values, variant records, and whole documents.
package types

import "fmt"

// FieldCategory identifies where a declared field attaches: whole-variant
// (INFO) or per-sample (FORMAT).
type FieldCategory string

const (
	CategoryInfo   FieldCategory = "INFO"
	CategoryFormat FieldCategory = "FORMAT"
)

// AllCategories returns all valid field categories.
func AllCategories() []FieldCategory {
	return []FieldCategory{
		CategoryInfo,
		CategoryFormat,
	}
}

// FieldType identifies the VCF value type of a declared field.
type FieldType string

const (
	TypeInteger   FieldType = "Integer"
	TypeFloat     FieldType = "Float"
	TypeFlag      FieldType = "Flag"
	TypeCharacter FieldType = "Character"
	TypeString    FieldType = "String"
)

// AllTypes returns all valid field types.
func AllTypes() []FieldType {
	return []FieldType{
		TypeInteger,
		TypeFloat,
		TypeFlag,
		TypeCharacter,
		TypeString,
	}
}

// Field is the declared metadata for one INFO or FORMAT field.
// Number holds the raw VCF Number token: a non-negative integer string,
// "A", "R", "G", or ".".
type Field struct {
	Category    FieldCategory `json:"category"`
	Key         string        `json:"key"`
	Type        FieldType     `json:"type"`
	Number      string        `json:"number"`
	Description string        `json:"description,omitempty"`
}

// HeaderLine renders the field's header metadata line.
func (f Field) HeaderLine() string {
	return fmt.Sprintf("##%s=<ID=%s,Type=%s,Number=%s,Description=%q>",
		f.Category, f.Key, f.Type, f.Number, f.Description)
}
