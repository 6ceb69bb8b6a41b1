package account

import (
	domain "hotel-accounts-api/internal/domain/account"
)

func fromDBModel(model *Account) *domain.Account {
	var a = &domain.Account{
		ID:           domain.ID(model.ID),
		Name:         deref(model.Name),
		CPF:          deref(model.CPF),
		Email:        deref(model.Email),
		Phone:        deref(model.Phone),
		Address:      deref(model.Address),
		PasswordHash: model.PasswordHash,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
		DeletedBy: (*domain.ID)(model.DeletedBy),
	}

	return a
}

func fromDBModels(models *Accounts) domain.Accounts {
	as := make(domain.Accounts, len(*models))
	for idx, a := range *models {
		as[idx] = fromDBModel(a)
	}

	return as
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
