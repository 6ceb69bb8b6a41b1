package account

import (
	"time"
)

// Account mirrors one accounts row. Descriptive columns are nullable, hence
// the pointers; the mapper folds NULL into the domain's empty string.
type (
	Account struct {
		ID           uint64
		Name         *string
		CPF          *string
		Email        *string
		Phone        *string
		Address      *string
		PasswordHash *string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
		DeletedBy *uint64
	}
	Accounts []*Account
)
