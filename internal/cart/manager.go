package cart

import (
	"context"
	"sync"

	"github.com/oyugibear/bofa-backend/pkg/logger"
	redisclient "github.com/oyugibear/bofa-backend/pkg/redis"
)

// ProviderFactory builds the persistence backend for one owner's cart.
type ProviderFactory func(ownerID string) Provider

// RedisProviderFactory backs every cart with the shared Redis client.
func RedisProviderFactory(client *redisclient.Client) ProviderFactory {
	return func(ownerID string) Provider {
		return NewRedisProvider(client, ownerID)
	}
}

// Manager hands out one Store per owner and hydrates it on first use.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	providers ProviderFactory
	logg      *logger.Logger
}

func NewManager(providers ProviderFactory, logg *logger.Logger) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		providers: providers,
		logg:      logg,
	}
}

// For returns the owner's store, creating and hydrating it if this is the
// first request of the session. The store is hydrated before it goes into
// the map, so callers never see one that is still cold.
func (m *Manager) For(ctx context.Context, ownerID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[ownerID]
	if !ok {
		store = NewStore(m.providers(ownerID), m.logg)
		store.Hydrate(ctx)
		m.stores[ownerID] = store
	}
	return store
}

// Forget drops the owner's in-memory store, typically on logout. The
// persisted snapshot stays for the next session to hydrate from.
func (m *Manager) Forget(ownerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, ownerID)
}
