package account

import (
	"time"
)

type (
	ID uint64

	// Account is a hotel customer record. Descriptive fields are optional:
	// the empty string means the field was never set. PasswordHash is only
	// ever a bcrypt hash and must never reach an external projection.
	Account struct {
		ID           ID
		Name         string
		CPF          string
		Email        string
		Phone        string
		Address      string
		PasswordHash *string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
		DeletedBy *ID
	}
	Accounts []*Account

	// Patch carries the fields of an update request. nil means the field was
	// absent from the payload (leave unchanged); a non-nil pointer is an
	// explicit new value, including the empty string.
	Patch struct {
		Name     *string
		CPF      *string
		Email    *string
		Phone    *string
		Address  *string
		Password *string
	}
)

// Deleted reports whether the record is soft-deleted.
func (a *Account) Deleted() bool { return a.DeletedAt != nil }
