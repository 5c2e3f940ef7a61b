// Package validate implements client-side credential validation. The
// predicates run before any network call; a form that fails here never
// reaches the API.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Email reports whether s looks like local@domain.tld: exactly one '@',
// no whitespace, and at least one '.' in the domain part.
func Email(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	// The dot must separate non-empty labels
	return dot > 0 && dot < len(domain)-1
}

// Password reports whether s is a valid password: at least 6 characters,
// at least one ASCII letter, at least one digit, nothing else allowed.
func Password(s string) bool {
	if len(s) < 6 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

// Identifier reports whether s is a valid enrollment/staff identifier:
// alphanumeric and at least 3 characters.
func Identifier(s string) bool {
	if len(s) < 3 {
		return false
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// Match reports whether a and b are equal. Used for the password
// confirmation field.
func Match(a, b string) bool {
	return a == b
}

// LoginForm carries the fields of the login screen.
type LoginForm struct {
	Email    string `validate:"required,loginemail"`
	Password string `validate:"required,password"`
}

// RegisterForm carries the fields of the registration screen.
type RegisterForm struct {
	FullName        string `validate:"required"`
	Email           string `validate:"required,loginemail"`
	EnrollmentID    string `validate:"required,identifier"`
	Department      string `validate:"required"`
	Role            string `validate:"required"`
	Password        string `validate:"required,password"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// messages maps field name to the error shown next to it. Generic binding
// failures fall back to a required-field message.
var messages = map[string]string{
	"Email":           "Enter a valid email address",
	"Password":        "Password must be at least 6 characters with letters and digits only",
	"EnrollmentID":    "ID must be alphanumeric and at least 3 characters",
	"ConfirmPassword": "Passwords do not match",
}

// FormValidator aggregates the pure predicates into field-level errors.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator registers the credential predicates as custom tags.
func NewFormValidator() *FormValidator {
	v := validator.New()

	v.RegisterValidation("loginemail", func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	})
	v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return Password(fl.Field().String())
	})
	v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return Identifier(fl.Field().String())
	})

	return &FormValidator{validate: v}
}

// Check validates a form struct and returns field name -> message.
// The form is submittable iff the returned map is empty.
func (f *FormValidator) Check(form any) map[string]string {
	err := f.validate.Struct(form)
	if err == nil {
		return map[string]string{}
	}

	errs := map[string]string{}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid form submission"
		return errs
	}

	for _, fieldErr := range validationErrs {
		field := fieldErr.Field()
		if msg, known := messages[field]; known && fieldErr.Tag() != "required" {
			errs[field] = msg
			continue
		}
		errs[field] = "This field is required"
	}
	return errs
}
