package common

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var slugRegex = regexp.MustCompile("^[a-z0-9_-]{1,50}$")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		if err := validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRegex.MatchString(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	})

	return validate
}

// Validate checks the validate tags of input. It returns nil if input is
// valid, otherwise a message for each invalid field keyed by its json name.
func Validate(input any) map[string]string {
	err := getValidator().Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return map[string]string{"": err.Error()}
	}

	fields := map[string]string{}
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = message(fieldErr)
	}

	return fields
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return "Ensure this value has at most " + fieldErr.Param() + " characters."
	case "slug":
		return "Enter a valid slug consisting of lowercase letters, numbers, underscores or hyphens."
	default:
		return "Enter a valid value."
	}
}

// TrimText removes the surrounding spaces of a submitted text, a text made of
// spaces only becomes empty.
func TrimText(s string) string {
	return strings.TrimSpace(s)
}

func IsValidSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}
