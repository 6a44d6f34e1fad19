// Package validate wraps go-playground/validator so every failure surfaces as
// a single FieldError naming the offending JSON field.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a validation failure on one field. Field is the dotted JSON
// path (for example "salary.type").
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// Invalid builds a FieldError whose message starts with the field name.
func Invalid(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: field + " " + fmt.Sprintf(format, args...)}
}

type Validator struct {
	v     *validator.Validate
	enums map[string][]string
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return &Validator{v: v, enums: map[string][]string{}}
}

// RegisterEnum adds a tag that accepts exactly the given string values.
// Call it before the validator is shared between goroutines.
func (v *Validator) RegisterEnum(tag string, values ...string) error {
	allowed := slices.Clone(values)
	if err := v.v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}); err != nil {
		return err
	}
	v.enums[tag] = allowed
	return nil
}

// Struct validates s and returns the first failure as a *FieldError.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := fieldPath(fe.Namespace())
	return &FieldError{Field: field, Message: v.message(field, fe)}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func (v *Validator) message(field string, fe validator.FieldError) string {
	if values, ok := v.enums[fe.Tag()]; ok {
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(values, ", "))
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, siblingPath(field, fe.Param()))
	}
	return field + " is invalid"
}

// siblingPath names a Go struct field relative to field's parent,
// e.g. ("salary.max", "Min") -> "salary.min".
func siblingPath(field, goName string) string {
	name := strings.ToLower(goName[:1]) + goName[1:]
	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[:i+1] + name
	}
	return name
}
