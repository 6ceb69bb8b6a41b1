package ports

import (
	"context"

	"hotel-accounts-api/internal/domain/account"
)

// AccountService is the lifecycle surface consumed by the REST boundary.
// A (nil, nil) record result means the id did not resolve to an accessible
// record; the boundary maps it to its own not-found representation.
type AccountService interface {
	FindAccountByID(ctx context.Context, id account.ID) (*account.Account, error)
	FindAccounts(ctx context.Context, page, pageSize int, search string) (account.Accounts, int64, error)
	FindDeletedAccounts(ctx context.Context, page, pageSize int) (account.Accounts, int64, error)
	CreateAccount(ctx context.Context, req account.Account, password string) (*account.Account, error)
	UpdateAccount(ctx context.Context, id account.ID, patch account.Patch) (*account.Account, error)
	DeleteAccount(ctx context.Context, id account.ID, deletedBy *account.ID) (*account.Account, error)
	RestoreAccount(ctx context.Context, id account.ID) (*account.Account, error)
}
