// ABOUTME: Settings validation through go-playground/validator struct tags
// ABOUTME: Field errors become a *ValidationError naming the YAML path that failed

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mauromedda/gridtui/pkg/tui/key"
)

// ValidationError reports the first settings field that failed a rule.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the package's custom
// tags registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("action", func(fl validator.FieldLevel) bool {
			_, ok := defaultBindings[KeyAction(fl.Field().String())]
			return ok
		})
		_ = v.RegisterValidation("keyname", func(fl validator.FieldLevel) bool {
			_, ok := key.Parse(fl.Field().String())
			return ok
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks s against its struct tags.
func (s *Settings) Validate() error {
	return convertValidationError(validatorInstance().Struct(s))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := yamlFieldName(fe)
		msg := fmt.Sprintf("value %v failed %q", fe.Value(), fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("value %v failed %q (%s)", fe.Value(), fe.Tag(), fe.Param())
		}
		return &ValidationError{Field: field, Message: msg, Err: err}
	}
	return &ValidationError{Field: "config", Message: err.Error(), Err: err}
}

// yamlFieldName drops the root struct name from the namespace.
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
