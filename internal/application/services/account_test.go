package services

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-accounts-api/internal/application/ports"
	domain "hotel-accounts-api/internal/domain/account"
	accountDB "hotel-accounts-api/internal/infrastructure/db/postgres/account"
	"hotel-accounts-api/internal/infrastructure/mq"
)

// memRepository is an in-memory domain.Repository with the same soft-delete
// and active-only-uniqueness semantics as the Postgres one.
type memRepository struct {
	nextID   uint64
	accounts map[domain.ID]*domain.Account
}

func newMemRepository() *memRepository {
	return &memRepository{nextID: 1, accounts: make(map[domain.ID]*domain.Account)}
}

func (m *memRepository) clone(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func (m *memRepository) FetchAccountByID(_ context.Context, id domain.ID) (*domain.Account, error) {
	a, ok := m.accounts[id]
	if !ok || a.Deleted() {
		return nil, nil
	}
	return m.clone(a), nil
}

func (m *memRepository) FetchAccountByIDAny(_ context.Context, id domain.ID) (*domain.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	return m.clone(a), nil
}

func (m *memRepository) FetchActiveByEmail(_ context.Context, email string, excludeID domain.ID) (*domain.Account, error) {
	for _, a := range m.accounts {
		if !a.Deleted() && a.Email == email && a.ID != excludeID {
			return m.clone(a), nil
		}
	}
	return nil, nil
}

func (m *memRepository) FetchActiveByCPF(_ context.Context, cpf string, excludeID domain.ID) (*domain.Account, error) {
	for _, a := range m.accounts {
		if !a.Deleted() && a.CPF == cpf && a.ID != excludeID {
			return m.clone(a), nil
		}
	}
	return nil, nil
}

func (m *memRepository) matches(a *domain.Account, search string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(a.Name), s) ||
		strings.Contains(strings.ToLower(a.Email), s) ||
		strings.Contains(a.CPF, s)
}

func (m *memRepository) FetchAccounts(_ context.Context, page, pageSize int, search string) (domain.Accounts, int64, error) {
	var all domain.Accounts
	for _, a := range m.accounts {
		if !a.Deleted() && m.matches(a, search) {
			all = append(all, m.clone(a))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return pageOf(all, page, pageSize)
}

func (m *memRepository) FetchDeletedAccounts(_ context.Context, page, pageSize int) (domain.Accounts, int64, error) {
	var all domain.Accounts
	for _, a := range m.accounts {
		if a.Deleted() {
			all = append(all, m.clone(a))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DeletedAt.After(*all[j].DeletedAt) })
	return pageOf(all, page, pageSize)
}

func pageOf(all domain.Accounts, page, pageSize int) (domain.Accounts, int64, error) {
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *memRepository) CreateAccount(_ context.Context, req domain.Account) (*domain.Account, error) {
	now := time.Now()
	req.ID = domain.ID(m.nextID)
	m.nextID++
	req.CreatedAt = now
	req.UpdatedAt = now
	m.accounts[req.ID] = m.clone(&req)
	return m.clone(&req), nil
}

func (m *memRepository) UpdateAccount(_ context.Context, req domain.Account) (*domain.Account, error) {
	cur, ok := m.accounts[req.ID]
	if !ok || cur.Deleted() {
		return nil, nil
	}
	req.CreatedAt = cur.CreatedAt
	req.UpdatedAt = time.Now()
	m.accounts[req.ID] = m.clone(&req)
	return m.clone(&req), nil
}

func (m *memRepository) SoftDeleteAccount(_ context.Context, id domain.ID, deletedBy *domain.ID) (*domain.Account, error) {
	a, ok := m.accounts[id]
	if !ok || a.Deleted() {
		return nil, nil
	}
	now := time.Now()
	a.DeletedAt = &now
	a.DeletedBy = deletedBy
	a.UpdatedAt = now
	return m.clone(a), nil
}

func (m *memRepository) RestoreAccount(_ context.Context, id domain.ID) (*domain.Account, error) {
	a, ok := m.accounts[id]
	if !ok || !a.Deleted() {
		return nil, nil
	}
	a.DeletedAt = nil
	a.UpdatedAt = time.Now()
	return m.clone(a), nil
}

type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ                                { return &fakeMQ{in: make(chan mq.Event, 64)} }
func (f *fakeMQ) Connect(context.Context, string) error { return nil }
func (f *fakeMQ) Init() error                           { return nil }
func (f *fakeMQ) PublisherWorker(context.Context)       {}
func (f *fakeMQ) GetInputChan() chan mq.Event           { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection          { return nil }

func newTestService(t *testing.T) (ports.AccountService, *memRepository, *fakeMQ) {
	t.Helper()
	repo := newMemRepository()
	fmq := newFakeMQ()
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
	return NewAccountService(repo, fmq, counter), repo, fmq
}

func strPtr(s string) *string { return &s }

func TestCreateAccount_RoundTrip(t *testing.T) {
	svc, _, fmq := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, domain.Account{
		Name:    "Ana Silva",
		CPF:     "12345678901",
		Email:   "ana@x.com",
		Phone:   "11987654321",
		Address: "Rua das Flores, 10",
	}, "secret1")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.ID(1), created.ID)
	require.NotNil(t, created.PasswordHash)
	assert.NotEqual(t, "secret1", *created.PasswordHash)

	got, err := svc.FindAccountByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana Silva", got.Name)
	assert.Equal(t, "12345678901", got.CPF)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, "11987654321", got.Phone)
	assert.Equal(t, "Rua das Flores, 10", got.Address)
	assert.Nil(t, got.DeletedAt)

	// lifecycle event published
	e := <-fmq.in
	assert.Equal(t, "POST", e.Method)
	assert.Equal(t, uint64(1), e.AccountID)
}

func TestCreateAccount_EmailConflictUntilHolderDeleted(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateAccount(ctx, domain.Account{Email: "dup@x.com"}, "")
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, domain.Account{Email: "dup@x.com"}, "")
	require.ErrorIs(t, err, accountDB.ErrEmailAlreadyExists)

	_, err = svc.DeleteAccount(ctx, first.ID, nil)
	require.NoError(t, err)

	third, err := svc.CreateAccount(ctx, domain.Account{Email: "dup@x.com"}, "")
	require.NoError(t, err)
	require.NotNil(t, third)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestCreateAccount_CPFConflict(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, domain.Account{CPF: "12345678901"}, "")
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, domain.Account{CPF: "12345678901", Email: "other@x.com"}, "")
	require.ErrorIs(t, err, accountDB.ErrCPFAlreadyExists)
}

func TestUpdateAccount_EmptyPatchKeepsFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, domain.Account{
		Name:  "Ana Silva",
		Email: "ana@x.com",
		CPF:   "12345678901",
	}, "secret1")
	require.NoError(t, err)

	updated, err := svc.UpdateAccount(ctx, created.ID, domain.Patch{})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.CPF, updated.CPF)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateAccount_TriState(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, domain.Account{
		Name:  "Ana Silva",
		Phone: "11987654321",
	}, "")
	require.NoError(t, err)

	// absent field unchanged, explicit empty string clears
	updated, err := svc.UpdateAccount(ctx, created.ID, domain.Patch{Phone: strPtr("")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ana Silva", updated.Name)
	assert.Equal(t, "", updated.Phone)
}

func TestUpdateAccount_EmailConflictExcludesSelf(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAccount(ctx, domain.Account{Email: "a@x.com"}, "")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, domain.Account{Email: "b@x.com"}, "")
	require.NoError(t, err)

	// keeping its own email is not a conflict
	_, err = svc.UpdateAccount(ctx, a.ID, domain.Patch{Email: strPtr("a@x.com")})
	require.NoError(t, err)

	// taking another active account's email is
	_, err = svc.UpdateAccount(ctx, a.ID, domain.Patch{Email: strPtr("b@x.com")})
	require.ErrorIs(t, err, accountDB.ErrEmailAlreadyExists)
}

func TestUpdateAccount_RehashOnlyWhenPasswordPresent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, domain.Account{Email: "a@x.com"}, "secret1")
	require.NoError(t, err)

	kept, err := svc.UpdateAccount(ctx, created.ID, domain.Patch{Name: strPtr("Ana")})
	require.NoError(t, err)
	assert.Equal(t, *created.PasswordHash, *kept.PasswordHash)

	changed, err := svc.UpdateAccount(ctx, created.ID, domain.Patch{Password: strPtr("secret2")})
	require.NoError(t, err)
	assert.NotEqual(t, *created.PasswordHash, *changed.PasswordHash)
}

func TestUpdateAccount_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	got, err := svc.UpdateAccount(context.Background(), 42, domain.Patch{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSoftDeleteRestoreLifecycle(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	deleter, err := svc.CreateAccount(ctx, domain.Account{Email: "admin@x.com"}, "")
	require.NoError(t, err)
	created, err := svc.CreateAccount(ctx, domain.Account{Email: "ana@x.com"}, "")
	require.NoError(t, err)

	deleted, err := svc.DeleteAccount(ctx, created.ID, &deleter.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.NotNil(t, deleted.DeletedAt)
	require.NotNil(t, deleted.DeletedBy)
	assert.Equal(t, deleter.ID, *deleted.DeletedBy)

	// reads exclude the deleted record
	got, err := svc.FindAccountByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// but the deleted listing includes it
	gone, total, err := svc.FindDeletedAccounts(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, gone, 1)
	assert.Equal(t, created.ID, gone[0].ID)

	// deleting again is not found at the store layer
	again, err := svc.DeleteAccount(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, again)

	restored, err := svc.RestoreAccount(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Nil(t, restored.DeletedAt)
	// deleted_by stays as a historical trace
	require.NotNil(t, restored.DeletedBy)
	assert.Equal(t, deleter.ID, *restored.DeletedBy)

	got, err = svc.FindAccountByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ana@x.com", got.Email)
}

func TestRestoreAccount_NotDeleted(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, domain.Account{Email: "ana@x.com"}, "")
	require.NoError(t, err)

	_, err = svc.RestoreAccount(ctx, created.ID)
	require.ErrorIs(t, err, ErrAccountNotDeleted)
}

func TestRestoreAccount_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	got, err := svc.RestoreAccount(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRestoreAccount_ReValidatesUniqueness(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateAccount(ctx, domain.Account{Email: "dup@x.com"}, "")
	require.NoError(t, err)
	_, err = svc.DeleteAccount(ctx, first.ID, nil)
	require.NoError(t, err)

	// a new active account took the email while the first was deleted
	_, err = svc.CreateAccount(ctx, domain.Account{Email: "dup@x.com"}, "")
	require.NoError(t, err)

	_, err = svc.RestoreAccount(ctx, first.ID)
	require.ErrorIs(t, err, accountDB.ErrEmailAlreadyExists)
}

func TestFindAccounts_Pagination(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, domain.Account{Email: "a@x.com"}, "")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, domain.Account{Email: "b@x.com"}, "")
	require.NoError(t, err)

	rows, total, err := svc.FindAccounts(ctx, 1, 1, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 1)
}

func TestFindAccounts_Search(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, domain.Account{Name: "Ana Silva", Email: "ana@x.com"}, "")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, domain.Account{Name: "Bruno Costa", Email: "bruno@x.com"}, "")
	require.NoError(t, err)

	rows, total, err := svc.FindAccounts(ctx, 1, 10, "silva")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Silva", rows[0].Name)
}

func TestFindAccounts_InvalidPagination(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, tc := range []struct{ page, size int }{
		{0, 10},
		{1, 0},
		{1, MaxPageSize + 1},
		{-1, 10},
	} {
		_, _, err := svc.FindAccounts(ctx, tc.page, tc.size, "")
		require.ErrorIs(t, err, ErrInvalidPagination)
		_, _, err = svc.FindDeletedAccounts(ctx, tc.page, tc.size)
		require.ErrorIs(t, err, ErrInvalidPagination)
	}
}
