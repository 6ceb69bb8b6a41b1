package account

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "hotel-accounts-api/internal/domain/account"
	"hotel-accounts-api/internal/infrastructure/db/postgres"
)

const (
	emailUniqueConstraint = "accounts_email_active_key"
	cpfUniqueConstraint   = "accounts_cpf_active_key"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*Account, error) {
	a := new(Account)
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.CPF,
		&a.Email,
		&a.Phone,
		&a.Address,
		&a.PasswordHash,

		&a.CreatedAt,
		&a.UpdatedAt,

		&a.DeletedAt,
		&a.DeletedBy,
	)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// mapUniqueViolation remaps a partial-unique-index violation to the matching
// conflict sentinel. The indexes are the authoritative guard against the race
// where two concurrent writes both pass the service pre-checks.
func mapUniqueViolation(err error) error {
	switch postgres.UniqueConstraint(err) {
	case emailUniqueConstraint:
		return ErrEmailAlreadyExists
	case cpfUniqueConstraint:
		return ErrCPFAlreadyExists
	}
	return err
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) fetchPage(ctx context.Context, listQuery string, listArgs []any, countQuery string, countArgs []any) (domain.Accounts, int64, error) {
	rows, err := r.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var as Accounts
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		as = append(as, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err = r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return fromDBModels(&as), total, nil
}

func (r *Repository) FetchAccounts(ctx context.Context, page, pageSize int, search string) (domain.Accounts, int64, error) {
	offset := (page - 1) * pageSize
	return r.fetchPage(ctx,
		SelectAccounts, []any{search, pageSize, offset},
		CountAccounts, []any{search},
	)
}

func (r *Repository) FetchDeletedAccounts(ctx context.Context, page, pageSize int) (domain.Accounts, int64, error) {
	offset := (page - 1) * pageSize
	return r.fetchPage(ctx,
		SelectDeletedAccounts, []any{pageSize, offset},
		CountDeletedAccounts, nil,
	)
}

func (r *Repository) FetchAccountByID(ctx context.Context, id domain.ID) (*domain.Account, error) {
	return r.fetchOne(ctx, SelectAccountByID, uint64(id))
}

func (r *Repository) FetchAccountByIDAny(ctx context.Context, id domain.ID) (*domain.Account, error) {
	return r.fetchOne(ctx, SelectAccountByIDAny, uint64(id))
}

func (r *Repository) FetchActiveByEmail(ctx context.Context, email string, excludeID domain.ID) (*domain.Account, error) {
	return r.fetchOne(ctx, SelectActiveByEmail, email, uint64(excludeID))
}

func (r *Repository) FetchActiveByCPF(ctx context.Context, cpf string, excludeID domain.ID) (*domain.Account, error) {
	return r.fetchOne(ctx, SelectActiveByCPF, cpf, uint64(excludeID))
}

func (r *Repository) CreateAccount(ctx context.Context, req domain.Account) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(
		ctx,
		InsertAccount,
		req.Name, req.CPF, req.Email, req.Phone, req.Address, req.PasswordHash,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, mapUniqueViolation(err)
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) UpdateAccount(ctx context.Context, req domain.Account) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(
		ctx,
		UpdateAccountByID,
		req.Name, req.CPF, req.Email, req.Phone, req.Address, req.PasswordHash, uint64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, mapUniqueViolation(err)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) SoftDeleteAccount(ctx context.Context, id domain.ID, deletedBy *domain.ID) (*domain.Account, error) {
	return r.fetchOne(ctx, SoftDeleteAccountByID, uint64(id), (*uint64)(deletedBy))
}

func (r *Repository) RestoreAccount(ctx context.Context, id domain.ID) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, RestoreAccountByID, uint64(id)))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, mapUniqueViolation(err)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}
