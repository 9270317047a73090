package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/commute-calculator/internal/commute"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldProblem describes one input that failed validation.
type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InputsError collects every field problem found in one Inputs value.
type InputsError struct {
	Problems []FieldProblem
}

func (e *InputsError) Error() string {
	messages := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		messages = append(messages, p.Message)
	}
	return "invalid commute inputs: " + strings.Join(messages, "; ")
}

// ValidateInputs checks the ranges a form would enforce before the engine
// runs. It returns nil or an *InputsError.
func ValidateInputs(in commute.Inputs) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate inputs: %w", err)
	}

	problems := make([]FieldProblem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, FieldProblem{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return &InputsError{Problems: problems}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), lowerFirst(fe.Param()))
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
