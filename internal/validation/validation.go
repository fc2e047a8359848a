package validation

import (
	"fmt"
	"net/mail"
	"regexp"

	"github.com/dkuznetsova/staff-accounts-api/internal/constants"
	"github.com/dkuznetsova/staff-accounts-api/internal/dto"
)

// FieldViolation describes a single failed constraint on a form field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,50}$`)
	phoneRe    = regexp.MustCompile(`^[0-9+][0-9 ()-]{4,19}$`)

	// Localized name fields accept Cyrillic letters only.
	cyrillicRe = regexp.MustCompile(`^[а-яА-Я]{1,30}$`)
)

// ValidCyrillicName reports whether s satisfies the localized 1-30
// Cyrillic letters rule used by role and function names.
func ValidCyrillicName(s string) bool {
	return cyrillicRe.MatchString(s)
}

// ValidateAccountCreate checks a create form. Password is mandatory.
func ValidateAccountCreate(form dto.AccountForm) []FieldViolation {
	violations := validateAccountCommon(form)

	if form.Password == "" {
		violations = append(violations, FieldViolation{Field: "password", Message: "password is required"})
	}
	violations = append(violations, validatePasswordPair(form)...)

	return violations
}

// ValidateAccountEdit checks an edit form. A blank password means the
// current password stays unchanged.
func ValidateAccountEdit(form dto.AccountForm) []FieldViolation {
	violations := validateAccountCommon(form)

	if form.Password != "" {
		violations = append(violations, validatePasswordPair(form)...)
	}

	return violations
}

func validateAccountCommon(form dto.AccountForm) []FieldViolation {
	var violations []FieldViolation

	if form.Username == "" {
		violations = append(violations, FieldViolation{Field: "username", Message: "username is required"})
	} else if !usernameRe.MatchString(form.Username) {
		violations = append(violations, FieldViolation{
			Field: "username",
			Message: fmt.Sprintf("username must be %d-%d latin letters, digits, '.', '_' or '-'",
				constants.MinUsernameLength, constants.MaxUsernameLength),
		})
	}

	if form.Email == "" {
		violations = append(violations, FieldViolation{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(form.Email); err != nil {
		violations = append(violations, FieldViolation{Field: "email", Message: "email address is malformed"})
	}

	if form.Phone != "" && !phoneRe.MatchString(form.Phone) {
		violations = append(violations, FieldViolation{Field: "phone", Message: "phone number is malformed"})
	}

	return violations
}

func validatePasswordPair(form dto.AccountForm) []FieldViolation {
	var violations []FieldViolation

	if form.Password != "" && len(form.Password) < constants.MinPasswordLength {
		violations = append(violations, FieldViolation{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength),
		})
	}
	if form.Password != form.ConfirmPassword {
		violations = append(violations, FieldViolation{Field: "confirm_password", Message: "passwords do not match"})
	}

	return violations
}

// ValidateRole checks a role form. NameSecond defaults to Name when
// blank, so both are held to the Cyrillic rule.
func ValidateRole(name, nameSecond string) []FieldViolation {
	var violations []FieldViolation

	if name == "" {
		violations = append(violations, FieldViolation{Field: "name", Message: "name is required"})
	}
	if nameSecond == "" {
		nameSecond = name
	}
	if nameSecond != "" && !cyrillicRe.MatchString(nameSecond) {
		violations = append(violations, FieldViolation{
			Field:   "name_second",
			Message: fmt.Sprintf("must be 1-%d Cyrillic letters", constants.MaxCyrillicName),
		})
	}

	return violations
}

// ValidateFunction checks a permissions-catalog function form.
func ValidateFunction(name string) []FieldViolation {
	var violations []FieldViolation

	if name == "" {
		violations = append(violations, FieldViolation{Field: "name", Message: "name is required"})
	} else if !cyrillicRe.MatchString(name) {
		violations = append(violations, FieldViolation{
			Field:   "name",
			Message: fmt.Sprintf("must be 1-%d Cyrillic letters", constants.MaxCyrillicName),
		})
	}

	return violations
}
