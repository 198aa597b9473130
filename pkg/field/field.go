package field

import (
	"reflect"
	"strings"
)

// Kind identifies the widget family a field renders as in the PDF.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
	KindDropdown Kind = "dropdown"
	KindDate     Kind = "date"
	KindState    Kind = "state"
	KindCountry  Kind = "country"
	KindPhone    Kind = "phone"
	KindSSN      Kind = "ssn"
	KindEmail    Kind = "email"
	KindNumeric  Kind = "numeric"
)

// Valid reports whether the kind is one of the known widget families.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindTextarea, KindRadio, KindCheckbox, KindDropdown,
		KindDate, KindState, KindCountry, KindPhone, KindSSN, KindEmail,
		KindNumeric:
		return true
	default:
		return false
	}
}

// Field pairs a typed value with the PDF field metadata it maps onto. The
// zero value is usable; metadata is typically stamped by the mapping tables.
type Field[T any] struct {
	Value T      `json:"value"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Label string `json:"label,omitempty"`
	Kind  Kind   `json:"kind,omitempty"`
	Page  int    `json:"page,omitempty"`
}

// New constructs a Field bound to the given AcroForm name and widget kind.
func New[T any](name string, kind Kind) Field[T] {
	return Field[T]{Name: strings.TrimSpace(name), Kind: kind}
}

// WithValue returns a copy of the field carrying the supplied value.
func (f Field[T]) WithValue(value T) Field[T] {
	f.Value = value
	return f
}

// WithLabel returns a copy of the field carrying the supplied label.
func (f Field[T]) WithLabel(label string) Field[T] {
	f.Label = strings.TrimSpace(label)
	return f
}

// IsZero reports whether the field still carries its type's zero value.
func (f Field[T]) IsZero() bool {
	var zero T
	return reflect.DeepEqual(f.Value, zero)
}

// Bound reports whether the field has been mapped to a PDF field name.
func (f Field[T]) Bound() bool {
	return strings.TrimSpace(f.Name) != ""
}
