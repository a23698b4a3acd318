// Package cache holds in-process caching decorators for repository ports.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
)

// CachedAccountRepository serves account lookups from a TTL cache and falls back
// to the wrapped repository on a miss. Accounts are immutable once created, so
// entries only go stale by expiring.
type CachedAccountRepository struct {
	next  portsrepo.AccountRepositoryFacade
	store *gocache.Cache
}

// NewCachedAccountRepository wraps next with a cache whose entries live for ttl.
func NewCachedAccountRepository(next portsrepo.AccountRepositoryFacade, ttl time.Duration) *CachedAccountRepository {
	return &CachedAccountRepository{
		next:  next,
		store: gocache.New(ttl, 2*ttl),
	}
}

var _ portsrepo.AccountRepositoryFacade = (*CachedAccountRepository)(nil)

func (r *CachedAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if cached, ok := r.get(accountID); ok {
		return &cached, nil
	}

	account, err := r.next.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	r.store.Set(accountID, *account, gocache.DefaultExpiration)
	return account, nil
}

// FindAccountsByIDs only asks the wrapped repository for the ids it has not cached.
func (r *CachedAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	var missing []string
	for _, id := range accountIDs {
		if cached, ok := r.get(id); ok {
			result[id] = cached
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return result, nil
	}

	found, err := r.next.FindAccountsByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, account := range found {
		r.store.Set(id, account, gocache.DefaultExpiration)
		result[id] = account
	}
	return result, nil
}

func (r *CachedAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return r.next.ListAccounts(ctx, limit, offset)
}

func (r *CachedAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if err := r.next.SaveAccount(ctx, account); err != nil {
		return err
	}
	r.store.Set(account.AccountID, account, gocache.DefaultExpiration)
	return nil
}

func (r *CachedAccountRepository) get(accountID string) (domain.Account, bool) {
	v, ok := r.store.Get(accountID)
	if !ok {
		return domain.Account{}, false
	}
	account, ok := v.(domain.Account)
	return account, ok
}
