package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/jwalitptl/passcheck/pkg/errors"
	"github.com/jwalitptl/passcheck/pkg/password"
)

// PasswordTag is the struct tag rule that applies the password policy.
const PasswordTag = "password"

// Validator provides validation functionality
type Validator interface {
	Validate(interface{}) error
	ValidateField(field string, value interface{}, rules ...string) error
}

// FieldError describes one failed rule
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s failed %s", e.Field, e.Rule)
}

type validator struct {
	engine *playground.Validate
}

func New() Validator {
	engine := playground.New(playground.WithRequiredStructEnabled())

	engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// RegisterValidation only fails for an empty tag or nil func.
	// The password rule only passes string fields.
	_ = engine.RegisterValidation(PasswordTag, func(fl playground.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return password.Validate(fl.Field().String()).IsValid()
	})

	return &validator{engine: engine}
}

func (v *validator) Validate(obj interface{}) error {
	err := v.engine.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Internal(err)
	}
	return v.translate(fieldErrs, func(fe playground.FieldError) string {
		return fe.Field()
	})
}

func (v *validator) ValidateField(field string, value interface{}, rules ...string) error {
	if len(rules) == 0 {
		return nil
	}

	err := v.engine.Var(value, strings.Join(rules, ","))
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Internal(err)
	}
	return v.translate(fieldErrs, func(playground.FieldError) string {
		return field
	})
}

// translate turns engine errors into an AppError. A failed password rule wins so the
// caller can branch on the exact status.
func (v *validator) translate(fieldErrs playground.ValidationErrors, name func(playground.FieldError) string) error {
	failures := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == PasswordTag {
			if s, ok := fe.Value().(string); ok {
				if appErr := errors.WeakPassword(password.Validate(s)); appErr != nil {
					return appErr
				}
			}
		}
		failures = append(failures, FieldError{Field: name(fe), Rule: fe.Tag()})
	}

	msgs := make([]string, len(failures))
	for i, f := range failures {
		msgs[i] = f.String()
	}
	return errors.BadRequest(strings.Join(msgs, "; "), &Failures{Fields: failures})
}

// Failures carries the individual field errors behind a BadRequest.
type Failures struct {
	Fields []FieldError
}

func (f *Failures) Error() string {
	return fmt.Sprintf("%d field(s) failed validation", len(f.Fields))
}
