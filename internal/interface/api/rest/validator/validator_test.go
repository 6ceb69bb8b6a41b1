package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountDTO "hotel-accounts-api/internal/interface/api/rest/dto/account"
	"hotel-accounts-api/internal/interface/api/rest/dto/auth"
)

func strPtr(s string) *string { return &s }

func TestValidatePagination(t *testing.T) {
	page, limit, err := ValidatePagination("", "")
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageSize, limit)

	page, limit, err = ValidatePagination("3", "25")
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	_, _, err = ValidatePagination("abc", "")
	require.Error(t, err)

	_, _, err = ValidatePagination("", "x")
	require.Error(t, err)
}

func TestIsAccountID(t *testing.T) {
	ok, id := IsAccountID("42")
	assert.True(t, ok)
	assert.EqualValues(t, 42, id)

	for _, s := range []string{"", "0", "-1", "abc", "1.5"} {
		ok, _ := IsAccountID(s)
		assert.False(t, ok, s)
	}
}

func TestValidateAccount(t *testing.T) {
	t.Run("empty request is valid", func(t *testing.T) {
		assert.Nil(t, ValidateAccount(accountDTO.Request{}))
	})

	t.Run("all fields valid", func(t *testing.T) {
		errs := ValidateAccount(accountDTO.Request{
			Name:     strPtr("Ana Silva"),
			CPF:      strPtr("12345678901"),
			Email:    strPtr("ana@x.com"),
			Phone:    strPtr("11987654321"),
			Address:  strPtr("Rua das Flores, 10"),
			Password: strPtr("secret1"),
		})
		assert.Nil(t, errs)
	})

	t.Run("explicit empty clears descriptive fields", func(t *testing.T) {
		errs := ValidateAccount(accountDTO.Request{
			Name:    strPtr(""),
			Phone:   strPtr(""),
			Address: strPtr(""),
		})
		assert.Nil(t, errs)
	})

	cases := []struct {
		name  string
		req   accountDTO.Request
		field string
	}{
		{"short name", accountDTO.Request{Name: strPtr("A")}, "name"},
		{"cpf with letters", accountDTO.Request{CPF: strPtr("1234567890a")}, "cpf"},
		{"cpf too short", accountDTO.Request{CPF: strPtr("123")}, "cpf"},
		{"bad email", accountDTO.Request{Email: strPtr("not-an-email")}, "email"},
		{"short phone", accountDTO.Request{Phone: strPtr("123")}, "phone"},
		{"short address", accountDTO.Request{Address: strPtr("abc")}, "address"},
		{"short password", accountDTO.Request{Password: strPtr("12345")}, "password"},
		{"empty password present", accountDTO.Request{Password: strPtr("")}, "password"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateAccount(tt.req)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Nil(t, ValidateLogin(auth.LoginRequest{Email: "ana@x.com", Password: "secret1"}))

	errs := ValidateLogin(auth.LoginRequest{})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	errs = ValidateLogin(auth.LoginRequest{Email: "nope", Password: "x"})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "email")
}
