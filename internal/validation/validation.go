// Package validation converts binding failures into the per-field message
// maps the API returns on 400s.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UseJSONTagNames makes the validator report field names from json tags,
// so error maps are keyed the way clients sent the payload.
func UseJSONTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Messages flattens a request binding error into a map of field to message.
// Non-field errors (malformed JSON) collapse to a single "message" entry.
func Messages(err error) map[string]string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		out := make(map[string]string, len(vErrs))
		for _, fe := range vErrs {
			out[fe.Field()] = message(fe)
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{typeErr.Field: "Invalid value."}
	}

	return map[string]string{"message": "invalid request body"}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "min":
		return fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s.", fe.Param())
	default:
		return "Invalid value."
	}
}
