package validation

import (
	"github.com/go-playground/validator/v10"

	"climatestats.app/pkg/calendar"
)

// ISODateTag is the binding tag for YYYY-MM-DD path and query values
const ISODateTag = "isodate"

// IsISODate reports whether s is a real calendar date in YYYY-MM-DD form.
// It accepts exactly what calendar.Parse accepts.
func IsISODate(s string) bool {
	_, err := calendar.Parse(s)
	return err == nil
}

// ValidateISODate is the validator.Func registered under ISODateTag
func ValidateISODate(fl validator.FieldLevel) bool {
	return IsISODate(fl.Field().String())
}

// Register adds the custom validations to v
func Register(v *validator.Validate) error {
	return v.RegisterValidation(ISODateTag, ValidateISODate)
}
