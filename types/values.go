package types

import "strings"

// Datum is a single drawn field value, already rendered to text, or missing.
type Datum struct {
	text    string
	missing bool
}

// NewDatum wraps a rendered value.
func NewDatum(text string) Datum {
	return Datum{text: text}
}

// MissingDatum returns the missing value.
func MissingDatum() Datum {
	return Datum{missing: true}
}

// Missing reports whether the datum is the missing value.
func (d Datum) Missing() bool {
	return d.missing
}

// String renders the datum, with "." for missing.
func (d Datum) String() string {
	if d.missing {
		return "."
	}
	return d.text
}

// FieldValue is the drawn value set for one field at one variant (for INFO)
// or one sample (for FORMAT): either a flag presence bit or a list of
// possibly-missing data.
type FieldValue struct {
	isFlag bool
	flag   bool
	data   []Datum
}

// FlagValue returns a Flag-typed value; present=false means the flag is
// absent from the record.
func FlagValue(present bool) FieldValue {
	return FieldValue{isFlag: true, flag: present}
}

// ListValue returns a list-typed value.
func ListValue(data []Datum) FieldValue {
	return FieldValue{data: data}
}

// IsFlag reports whether the value came from a Flag-typed field.
func (v FieldValue) IsFlag() bool {
	return v.isFlag
}

// Data returns the value list; nil for flags.
func (v FieldValue) Data() []Datum {
	return v.data
}

// Missing reports whether the value collapses to missing overall: an absent
// flag, an empty list, or a list whose every element is missing.
func (v FieldValue) Missing() bool {
	if v.isFlag {
		return !v.flag
	}
	for _, d := range v.data {
		if !d.Missing() {
			return false
		}
	}
	return true
}

// Render joins the value list with commas, using "." for missing elements.
// Empty lists render as ".". Flags have no value text and render as "".
func (v FieldValue) Render() string {
	if v.isFlag {
		return ""
	}
	if len(v.data) == 0 {
		return "."
	}
	parts := make([]string, len(v.data))
	for i, d := range v.data {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}
