package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/clearform/sf86gen/pkg/field"
)

var (
	ssnRe     = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)
	zipRe     = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	usPhoneRe = regexp.MustCompile(`^[\d\s().+-]{7,20}$`)
)

// newFormatValidator wires the custom SF-86 format tags alongside the
// built-in ones like email.
func newFormatValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("ssn", func(fl validator.FieldLevel) bool {
		return ssnRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("zip", func(fl validator.FieldLevel) bool {
		return zipRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("usphone", func(fl validator.FieldLevel) bool {
		return usPhoneRe.MatchString(fl.Field().String())
	})
	return v
}

// formatTag maps a widget kind to the validator tag applied to its value.
// Kinds without a tag are not format checked.
func formatTag(kind field.Kind) string {
	switch kind {
	case field.KindEmail:
		return "omitempty,email"
	case field.KindSSN:
		return "omitempty,ssn"
	case field.KindPhone:
		return "omitempty,usphone"
	case field.KindState:
		return "omitempty,alpha,len=2"
	case field.KindNumeric:
		return "omitempty,numeric"
	default:
		return ""
	}
}
