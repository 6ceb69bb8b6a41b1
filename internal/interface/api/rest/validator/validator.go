package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"hotel-accounts-api/internal/domain/account"
	"hotel-accounts-api/internal/interface/api/rest/dto/auth"

	accountDTO "hotel-accounts-api/internal/interface/api/rest/dto/account"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt safe

	DefaultPageSize = 10
)

var cpfRe = regexp.MustCompile(`^\d{11}$`)

// ValidatePagination parses page/limit query params with their defaults.
// Range checks live in the service; this only rejects non-numeric input.
func ValidatePagination(page, limit string) (int, int, error) {
	p, l := 1, DefaultPageSize
	if page != "" {
		v, err := strconv.Atoi(page)
		if err != nil {
			return 0, 0, errors.New("page must be an integer")
		}
		p = v
	}
	if limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil {
			return 0, 0, errors.New("limit must be an integer")
		}
		l = v
	}

	return p, l, nil
}

func IsAccountID(s string) (bool, account.ID) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return false, 0
	}
	return true, account.ID(id)
}

// ValidateAccount checks only the fields present in the request; every field
// is optional. An explicit empty string clears a field and is accepted for
// the descriptive fields, but not for the password.
func ValidateAccount(r accountDTO.Request) map[string]string {
	errs := make(map[string]string)

	if r.Name != nil {
		if name := strings.TrimSpace(*r.Name); name != "" {
			if l := utf8.RuneCountInString(name); l < 2 || l > 100 {
				errs["name"] = "name length must be 2-100 characters"
			}
		}
	}

	if r.CPF != nil && *r.CPF != "" {
		if !cpfRe.MatchString(*r.CPF) {
			errs["cpf"] = "cpf must be exactly 11 numeric characters"
		}
	}

	if r.Email != nil {
		if email := strings.ToLower(strings.TrimSpace(*r.Email)); email != "" {
			if l := len(email); l < 5 || l > 100 {
				errs["email"] = "email length must be 5-100 characters"
			} else if _, err := mail.ParseAddress(email); err != nil {
				errs["email"] = "invalid email format"
			}
		}
	}

	if r.Phone != nil && *r.Phone != "" {
		if l := utf8.RuneCountInString(*r.Phone); l < 10 || l > 15 {
			errs["phone"] = "phone length must be 10-15 characters"
		}
	}

	if r.Address != nil && *r.Address != "" {
		if l := utf8.RuneCountInString(*r.Address); l < 5 || l > 50 {
			errs["address"] = "address length must be 5-50 characters"
		}
	}

	if r.Password != nil {
		if l := utf8.RuneCountInString(*r.Password); l < minPasswordLen || l > maxPasswordLen {
			errs["password"] = "password length must be 6-72 characters"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if r.Password == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
