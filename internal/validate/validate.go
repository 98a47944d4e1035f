package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Shared returns the process-wide validator. Struct-level rules are
// registered by the packages that own the types.
func Shared() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// FieldError is one failed rule, flattened for logs and CLI output.
type FieldError struct {
	Field   string
	Message string
	Rule    string
}

// Errors collects every failed rule of one Struct call.
type Errors []FieldError

func (ve Errors) Error() string {
	switch len(ve) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Field+" "+e.Message)
	}
	return fmt.Sprintf("validation failed: %d field errors (%s)", len(ve), strings.Join(parts, "; "))
}

// Struct validates s and converts validator errors into Errors.
func Struct(s any) error {
	err := Shared().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Namespace(),
			Message: message(fe),
			Rule:    fe.Tag(),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "unique":
		return "must not contain duplicates"
	case "slug":
		return "must be a lowercase slug"
	case "fields":
		return "numeric items need at least one field"
	case "choices":
		return "choice items need choices"
	case "correct":
		return "must name one of the item's choices"
	case "lesson_key":
		return "must be keyed by its own slug"
	case "lesson_topic":
		return "has no matching topic"
	default:
		return fmt.Sprintf("failed rule '%s'", fe.Tag())
	}
}
