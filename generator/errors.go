package generator

import "fmt"

// The errors below mark programming faults: a caller reached value or field
// generation with vocabulary the generator does not know. They are raised by
// panic and are not recoverable; correct configurations never hit them.

// UnsupportedCategoryError reports an unknown field category.
type UnsupportedCategoryError struct {
	Category string
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("category %q is not supported", e.Category)
}

// UnsupportedTypeError reports an unknown field type in value generation.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("type %q is not supported", e.Type)
}

// UnsupportedNumberError reports a Number token that resolution does not
// recognize.
type UnsupportedNumberError struct {
	Number string
}

func (e *UnsupportedNumberError) Error() string {
	return fmt.Sprintf("number %q is not supported", e.Number)
}
