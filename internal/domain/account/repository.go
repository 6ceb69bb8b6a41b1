package account

import (
	"context"
)

// Repository owns the accounts table. Fetch methods return (nil, nil) when no
// row matches; callers decide whether that is a not-found condition.
type Repository interface {
	FetchAccountByID(ctx context.Context, id ID) (*Account, error)
	FetchAccountByIDAny(ctx context.Context, id ID) (*Account, error)
	FetchActiveByEmail(ctx context.Context, email string, excludeID ID) (*Account, error)
	FetchActiveByCPF(ctx context.Context, cpf string, excludeID ID) (*Account, error)
	FetchAccounts(ctx context.Context, page, pageSize int, search string) (Accounts, int64, error)
	FetchDeletedAccounts(ctx context.Context, page, pageSize int) (Accounts, int64, error)
	CreateAccount(ctx context.Context, req Account) (*Account, error)
	UpdateAccount(ctx context.Context, req Account) (*Account, error)
	SoftDeleteAccount(ctx context.Context, id ID, deletedBy *ID) (*Account, error)
	RestoreAccount(ctx context.Context, id ID) (*Account, error)
}
