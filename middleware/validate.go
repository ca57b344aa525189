package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared struct validator. Field names in error maps follow
// the json tags so clients can match them to form inputs.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationErrors flattens validator errors into a field -> message map
func ValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		errs["body"] = "Invalid request body!"
		return errs
	}

	for _, fe := range ves {
		switch fe.Tag() {
		case "required":
			errs[fe.Field()] = fmt.Sprintf("%s is required!", fe.Field())
		case "email":
			errs[fe.Field()] = "Invalid email!"
		case "min":
			errs[fe.Field()] = fmt.Sprintf("%s must be at least %s characters long!", fe.Field(), fe.Param())
		case "max":
			errs[fe.Field()] = fmt.Sprintf("%s must be at most %s characters long!", fe.Field(), fe.Param())
		case "oneof":
			errs[fe.Field()] = fmt.Sprintf("%s must be one of: %s!", fe.Field(), fe.Param())
		case "gte", "gt":
			errs[fe.Field()] = fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
		case "lte", "lt":
			errs[fe.Field()] = fmt.Sprintf("%s must be at most %s!", fe.Field(), fe.Param())
		case "url":
			errs[fe.Field()] = fmt.Sprintf("%s must be a valid URL!", fe.Field())
		default:
			errs[fe.Field()] = fmt.Sprintf("%s is invalid!", fe.Field())
		}
	}

	return errs
}
