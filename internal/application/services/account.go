package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"hotel-accounts-api/internal/application/ports"
	domain "hotel-accounts-api/internal/domain/account"
	accountDB "hotel-accounts-api/internal/infrastructure/db/postgres/account"
	"hotel-accounts-api/internal/infrastructure/mq"
	"hotel-accounts-api/internal/interface/api/rest/dto/account"
)

const (
	MaxPageSize = 100

	bcryptCost = 10
)

var (
	ErrInvalidPagination = errors.New("page must be >= 1 and page size within 1..100")
	ErrAccountNotDeleted = errors.New("account is not deleted")
)

type AccountService struct {
	accountRepository domain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewAccountService(
	accountRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AccountService {
	return &AccountService{
		accountRepository: accountRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (as *AccountService) publish(method string, a *domain.Account) {
	if a == nil {
		return
	}
	as.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Method:    method,
		AccountID: uint64(a.ID),
		Payload:   account.ToResponseAccount(*a),
	}
}

// checkUnique is the fast-path uniqueness pre-check against active records.
// excludeID keeps a record from colliding with itself on update/restore. The
// partial unique indexes remain the authoritative guard; a concurrent write
// that slips past this check surfaces as the same conflict error from the
// repository.
func (as *AccountService) checkUnique(ctx context.Context, email, cpf string, excludeID domain.ID) error {
	if email != "" {
		holder, err := as.accountRepository.FetchActiveByEmail(ctx, email, excludeID)
		if err != nil {
			return err
		}
		if holder != nil {
			return accountDB.ErrEmailAlreadyExists
		}
	}
	if cpf != "" {
		holder, err := as.accountRepository.FetchActiveByCPF(ctx, cpf, excludeID)
		if err != nil {
			return err
		}
		if holder != nil {
			return accountDB.ErrCPFAlreadyExists
		}
	}

	return nil
}

func hashPassword(plaintext string) (*string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return nil, err
	}
	h := string(b)
	return &h, nil
}

func (as *AccountService) FindAccountByID(ctx context.Context, id domain.ID) (*domain.Account, error) {
	a, err := as.accountRepository.FetchAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (as *AccountService) FindAccounts(ctx context.Context, page, pageSize int, search string) (domain.Accounts, int64, error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return nil, 0, ErrInvalidPagination
	}

	return as.accountRepository.FetchAccounts(ctx, page, pageSize, search)
}

func (as *AccountService) FindDeletedAccounts(ctx context.Context, page, pageSize int) (domain.Accounts, int64, error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return nil, 0, ErrInvalidPagination
	}

	return as.accountRepository.FetchDeletedAccounts(ctx, page, pageSize)
}

func (as *AccountService) CreateAccount(ctx context.Context, req domain.Account, password string) (*domain.Account, error) {
	if err := as.checkUnique(ctx, req.Email, req.CPF, 0); err != nil {
		return nil, err
	}

	if password != "" {
		hash, err := hashPassword(password)
		if err != nil {
			return nil, err
		}
		req.PasswordHash = hash
	}

	aRet, err := as.accountRepository.CreateAccount(ctx, req)
	if err != nil {
		return nil, err
	}

	as.publish(http.MethodPost, aRet)
	as.mCounter.WithLabelValues("account_created_total").Inc()

	return aRet, nil
}

func (as *AccountService) UpdateAccount(ctx context.Context, id domain.ID, patch domain.Patch) (*domain.Account, error) {
	cur, err := as.accountRepository.FetchAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, nil
	}

	merged := *cur
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.CPF != nil {
		merged.CPF = *patch.CPF
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}

	// only re-check values that actually changed
	checkEmail, checkCPF := "", ""
	if merged.Email != cur.Email {
		checkEmail = merged.Email
	}
	if merged.CPF != cur.CPF {
		checkCPF = merged.CPF
	}
	if err = as.checkUnique(ctx, checkEmail, checkCPF, id); err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hash, err := hashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		merged.PasswordHash = hash
	}

	aRet, err := as.accountRepository.UpdateAccount(ctx, merged)
	if err != nil {
		return nil, err
	}

	as.publish(http.MethodPut, aRet)
	as.mCounter.WithLabelValues("account_updated_total").Inc()

	return aRet, nil
}

func (as *AccountService) DeleteAccount(ctx context.Context, id domain.ID, deletedBy *domain.ID) (*domain.Account, error) {
	aRet, err := as.accountRepository.SoftDeleteAccount(ctx, id, deletedBy)
	if err != nil {
		return nil, err
	}
	if aRet == nil {
		return nil, nil
	}

	as.publish(http.MethodDelete, aRet)
	as.mCounter.WithLabelValues("account_deleted_total").Inc()

	return aRet, nil
}

// RestoreAccount clears deleted_at and keeps deleted_by as a historical
// trace. The record's email/cpf are re-validated against active records
// first, so a restore cannot silently reintroduce a duplicate that a create
// would have rejected.
func (as *AccountService) RestoreAccount(ctx context.Context, id domain.ID) (*domain.Account, error) {
	cur, err := as.accountRepository.FetchAccountByIDAny(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, nil
	}
	if !cur.Deleted() {
		return nil, ErrAccountNotDeleted
	}

	if err = as.checkUnique(ctx, cur.Email, cur.CPF, id); err != nil {
		return nil, err
	}

	aRet, err := as.accountRepository.RestoreAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	as.publish(http.MethodPatch, aRet)
	as.mCounter.WithLabelValues("account_restored_total").Inc()

	return aRet, nil
}
