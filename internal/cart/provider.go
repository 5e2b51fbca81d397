package cart

import (
	"context"
	"errors"
	"sync"

	redisclient "github.com/oyugibear/bofa-backend/pkg/redis"
)

// ErrNoSnapshot means no cart has been persisted for the owner yet.
var ErrNoSnapshot = errors.New("cart: no snapshot")

// Provider persists one cart's snapshot bytes.
type Provider interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	Delete(ctx context.Context) error
}

// RedisProvider keeps the snapshot under the owner's namespaced cart key.
type RedisProvider struct {
	client *redisclient.Client
	key    string
}

func NewRedisProvider(client *redisclient.Client, ownerID string) *RedisProvider {
	return &RedisProvider{client: client, key: client.CartKey(ownerID)}
}

func (p *RedisProvider) Load(ctx context.Context) ([]byte, error) {
	raw, err := p.client.Get(ctx, p.key)
	if errors.Is(err, redisclient.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return []byte(raw), nil
}

func (p *RedisProvider) Save(ctx context.Context, payload []byte) error {
	return p.client.Set(ctx, p.key, string(payload), 0)
}

func (p *RedisProvider) Delete(ctx context.Context) error {
	return p.client.Del(ctx, p.key)
}

// MemoryProvider backs a cart with process memory. Used by tests and by
// guest sessions that never touch Redis.
type MemoryProvider struct {
	mu      sync.Mutex
	payload []byte
	exists  bool
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{}
}

func (p *MemoryProvider) Load(_ context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.exists {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(p.payload))
	copy(out, p.payload)
	return out, nil
}

func (p *MemoryProvider) Save(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payload = make([]byte, len(payload))
	copy(p.payload, payload)
	p.exists = true
	return nil
}

func (p *MemoryProvider) Delete(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payload = nil
	p.exists = false
	return nil
}
