package ports

import (
	"context"

	"hotel-accounts-api/internal/domain/account"
)

type Auth interface {
	VerifyLogin(ctx context.Context, email, password string) (*account.Account, error)
}
