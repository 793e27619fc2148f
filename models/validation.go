package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterTagNames makes the binding validator report fields by their JSON
// names (Credit_History, not CreditHistory). Safe to call more than once.
func RegisterTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// NewValidationError maps a binding error to the 422 response body. Schema
// violations enumerate every offending field; anything else (malformed
// JSON, wrong content type) becomes a single body-level entry.
func NewValidationError(err error) ValidationErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrorResponse{
			Detail: []FieldError{{Field: "body", Message: err.Error()}},
		}
	}

	detail := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		detail = append(detail, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return ValidationErrorResponse{Detail: detail}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return "must be one of: " + strings.Join(splitOneOfParam(fe.Param()), ", ")
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "eq=0|eq=1":
		return "must be 0 or 1"
	default:
		return "is invalid"
	}
}

// splitOneOfParam splits an oneof parameter list, honoring the validator's
// single-quote grouping for values with spaces ('Not Graduate').
func splitOneOfParam(param string) []string {
	var vals []string
	var quoted strings.Builder
	inQuote := false
	for _, f := range strings.Fields(param) {
		switch {
		case inQuote:
			quoted.WriteByte(' ')
			quoted.WriteString(strings.TrimSuffix(f, "'"))
			if strings.HasSuffix(f, "'") {
				vals = append(vals, quoted.String())
				quoted.Reset()
				inQuote = false
			}
		case strings.HasPrefix(f, "'") && !strings.HasSuffix(f, "'"):
			quoted.WriteString(strings.TrimPrefix(f, "'"))
			inQuote = true
		default:
			vals = append(vals, strings.Trim(f, "'"))
		}
	}
	return vals
}
