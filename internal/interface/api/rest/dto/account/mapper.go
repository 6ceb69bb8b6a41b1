package account

import (
	"hotel-accounts-api/internal/domain/account"
)

func ToResponseAccount(aDomain account.Account) Account {
	var a = Account{
		ID:        uint64(aDomain.ID),
		Name:      aDomain.Name,
		CPF:       aDomain.CPF,
		Email:     aDomain.Email,
		Phone:     aDomain.Phone,
		Address:   aDomain.Address,
		CreatedAt: aDomain.CreatedAt,
		UpdatedAt: aDomain.UpdatedAt,
		DeletedAt: aDomain.DeletedAt,
		DeletedBy: (*uint64)(aDomain.DeletedBy),
	}

	return a
}

func ToResponseAccounts(asDomain account.Accounts) Accounts {
	as := make(Accounts, len(asDomain))
	for idx, a := range asDomain {
		as[idx] = ToResponseAccount(*a)
	}

	return as
}

func ToResponsePage(asDomain account.Accounts, total int64, page, limit int) ResponseData {
	return ResponseData{
		Data: ToResponseAccounts(asDomain),
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
	}
}

// ToDomainAccount maps a create request; the plaintext password travels
// separately so it never lands on the entity.
func ToDomainAccount(aRequest Request) (account.Account, string) {
	var a = account.Account{
		Name:    deref(aRequest.Name),
		CPF:     deref(aRequest.CPF),
		Email:   deref(aRequest.Email),
		Phone:   deref(aRequest.Phone),
		Address: deref(aRequest.Address),
	}

	return a, deref(aRequest.Password)
}

func ToPatch(aRequest Request) account.Patch {
	return account.Patch{
		Name:     aRequest.Name,
		CPF:      aRequest.CPF,
		Email:    aRequest.Email,
		Phone:    aRequest.Phone,
		Address:  aRequest.Address,
		Password: aRequest.Password,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
