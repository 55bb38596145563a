// Package validator plugs go-playground/validator into echo and registers
// the account field rules.
package validator

import (
	"regexp"
	"strings"
	"unicode"

	domainerrors "catrescue/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	phonePattern    = regexp.MustCompile(`^05\d{8}$`)
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

var _ echo.Validator = (*Validator)(nil)

// New returns a validator with the custom username, password and phone rules.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on a duplicate tag name, which cannot happen here.
	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("password", validatePassword)
	_ = v.RegisterValidation("phone", validatePhone)

	return &Validator{validate: v}
}

// Validate checks i and reports the first failing field as VALIDATION_FAILED.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(describe(fieldErrs))
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
}

func describe(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fe.Field()+" failed "+fe.Tag()+"="+fe.Param())

			continue
		}
		parts = append(parts, fe.Field()+" failed "+fe.Tag())
	}

	return strings.Join(parts, "; ")
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// validatePassword requires 8 to 20 characters with at least one letter and one digit.
func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if n := len([]rune(password)); n < 8 || n > 20 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}
