package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkuznetsova/staff-accounts-api/internal/dto"
)

func violationFields(violations []FieldViolation) []string {
	fields := make([]string, len(violations))
	for i, v := range violations {
		fields[i] = v.Field
	}
	return fields
}

func TestValidateAccountCreate_Valid(t *testing.T) {
	violations := ValidateAccountCreate(dto.AccountForm{
		Username:        "ivanov",
		Email:           "ivanov@example.com",
		Phone:           "1234567890",
		Password:        "P@ssw0rd!",
		ConfirmPassword: "P@ssw0rd!",
	})

	require.Empty(t, violations)
}

func TestValidateAccountCreate_CollectsViolations(t *testing.T) {
	violations := ValidateAccountCreate(dto.AccountForm{
		Username:        "ив",
		Email:           "not-an-email",
		Phone:           "abc",
		Password:        "short",
		ConfirmPassword: "different",
	})

	fields := violationFields(violations)
	require.Contains(t, fields, "username")
	require.Contains(t, fields, "email")
	require.Contains(t, fields, "phone")
	require.Contains(t, fields, "password")
	require.Contains(t, fields, "confirm_password")
}

func TestValidateAccountEdit_BlankPasswordAllowed(t *testing.T) {
	violations := ValidateAccountEdit(dto.AccountForm{
		Username: "ivanov",
		Email:    "ivanov@example.com",
	})

	require.Empty(t, violations)
}

func TestValidateAccountEdit_PasswordCheckedWhenPresent(t *testing.T) {
	violations := ValidateAccountEdit(dto.AccountForm{
		Username:        "ivanov",
		Email:           "ivanov@example.com",
		Password:        "short",
		ConfirmPassword: "short",
	})

	require.Contains(t, violationFields(violations), "password")
}

func TestValidCyrillicName(t *testing.T) {
	cases := map[string]bool{
		"Администрирование": true,
		"а":                 true,
		"":                  false,
		"Administration":    false,
		"Админ1":            false,
		"Два слова":         false,
	}

	for input, want := range cases {
		require.Equal(t, want, ValidCyrillicName(input), "input %q", input)
	}
}

func TestValidCyrillicName_LengthBound(t *testing.T) {
	thirty := ""
	for i := 0; i < 30; i++ {
		thirty += "а"
	}

	require.True(t, ValidCyrillicName(thirty))
	require.False(t, ValidCyrillicName(thirty+"а"))
}

func TestValidateFunction(t *testing.T) {
	require.Empty(t, ValidateFunction("Отчеты"))
	require.NotEmpty(t, ValidateFunction(""))
	require.NotEmpty(t, ValidateFunction("Reports"))
}

func TestValidateRole(t *testing.T) {
	require.Empty(t, ValidateRole("Администратор", ""))
	require.Empty(t, ValidateRole("admin", "Администратор"))
	require.NotEmpty(t, ValidateRole("", ""))
	require.NotEmpty(t, ValidateRole("admin", ""))
}
