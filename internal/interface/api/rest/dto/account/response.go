package account

import (
	"time"
)

// Account is the external projection of a record. There is deliberately no
// password field of any kind here.
type (
	Account struct {
		ID        uint64     `json:"id"`
		Name      string     `json:"name,omitempty"`
		CPF       string     `json:"cpf,omitempty"`
		Email     string     `json:"email,omitempty"`
		Phone     string     `json:"phone,omitempty"`
		Address   string     `json:"address,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt time.Time  `json:"updated_at"`
		DeletedAt *time.Time `json:"deleted_at,omitempty"`
		DeletedBy *uint64    `json:"deleted_by,omitempty"`
	}
	Accounts   []Account
	Pagination struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int64 `json:"total_pages"`
	}
	ResponseData struct {
		Data       Accounts   `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
)
