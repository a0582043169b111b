package validation

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Validator struct {
	Errors []ValidationError
}

func New() *Validator {
	return &Validator{
		Errors: make([]ValidationError, 0),
	}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Email checks that value is present and looks like an address.
func (v *Validator) Email(field, value string) {
	if value == "" {
		v.AddError(field, "is required")
		return
	}
	v.Check(emailRegex.MatchString(value), field, "must be a valid email address")
}

// MaxLength checks that value has at most n characters.
func (v *Validator) MaxLength(field, value string, n int) {
	v.Check(len([]rune(value)) <= n, field, fmt.Sprintf("must be at most %d characters", n))
}
