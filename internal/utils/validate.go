package utils

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

// NewValidator returns a validator that reports fields by their JSON names and
// knows the "strongpassword" tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})

	return v
}

// StrongPassword reports whether password has at least eight characters with
// an upper-case letter, a lower-case letter and a digit.
func StrongPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}

	var upper, lower, digit bool

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}

// FailedFields lists the fields named by a validation error, in struct order,
// optionally restricted to a single tag.
func FailedFields(err error, tag string) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	var fields []string

	for _, fe := range validationErrs {
		if tag != "" && fe.Tag() != tag {
			continue
		}

		fields = append(fields, fe.Field())
	}

	return fields
}
