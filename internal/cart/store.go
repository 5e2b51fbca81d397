package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/oyugibear/bofa-backend/pkg/logger"
)

// Store holds one owner's cart and mirrors it into a Provider. Mutations
// never fail from the caller's point of view: persistence problems are
// logged and the in-memory state keeps moving.
//
// Persistence follows the hydration gate: AddItem writes through only once
// Hydrate has run, so a half-restored session cannot clobber the stored
// cart with a partial one. RemoveItem and Clear always touch storage;
// dropping an item is safe to mirror even before the restore lands.
type Store struct {
	mu       sync.Mutex
	state    State
	provider Provider
	logg     *logger.Logger
}

func NewStore(provider Provider, logg *logger.Logger) *Store {
	return &Store{
		state:    State{Items: []Item{}},
		provider: provider,
		logg:     logg,
	}
}

// Hydrate restores the cart from the provider. Whether the snapshot is
// found, absent, or unreadable, the store comes out marked hydrated, so
// writes are unblocked exactly once per session.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.provider.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			s.logg.Error(ctx, "cart: loading snapshot", err)
		}
		s.state.Hydrated = true
		return
	}

	snap, err := decodeSnapshot(raw)
	if err != nil {
		s.logg.Error(ctx, "cart: decoding snapshot", err)
		s.state.Hydrated = true
		return
	}

	s.state.Items = snap.Items
	s.state.Quantity = snap.Quantity
	s.state.TotalAmount = snap.TotalAmount
	s.state.Hydrated = true
}

// AddItem appends the item, stamped with the booking date and time slot when
// given, and writes through if the store is hydrated.
func (s *Store) AddItem(ctx context.Context, item Item, date, timeSlot string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = withItem(s.state, item, date, timeSlot)
	if s.state.Hydrated {
		s.persist(ctx)
	}
}

// RemoveItem drops the first item matching id and writes through regardless
// of hydration. An id with no match still rewrites the snapshot.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = withoutItem(s.state, id)
	s.persist(ctx)
}

// Clear empties the cart and deletes the persisted snapshot.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = emptied(s.state)
	if err := s.provider.Delete(ctx); err != nil {
		s.logg.Error(ctx, "cart: deleting snapshot", err)
	}
}

// Replace swaps the whole state in memory without touching storage. The
// store keeps its current hydration flag; the one on next is ignored.
func (s *Store) Replace(next State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hydrated := s.state.Hydrated
	if next.Items == nil {
		next.Items = []Item{}
	}
	s.state = next
	s.state.Hydrated = hydrated
}

// State returns a copy safe to hand out.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotState()
}

func (s *Store) snapshotState() State {
	out := s.state
	out.Items = make([]Item, len(s.state.Items))
	for i, it := range s.state.Items {
		out.Items[i] = it.clone()
	}
	return out
}

// persist mirrors the current state. Callers hold the lock. Encoding fails
// when the total is NaN (JSON has no encoding for it); that lands here as a
// logged skip, same as any storage fault.
func (s *Store) persist(ctx context.Context) {
	payload, err := encodeSnapshot(s.state)
	if err != nil {
		s.logg.Error(ctx, "cart: encoding snapshot", err)
		return
	}
	if err := s.provider.Save(ctx, payload); err != nil {
		s.logg.Error(ctx, "cart: saving snapshot", err)
	}
}
