package repository

//go:generate mockgen -destination=mock_repository.go -package=repository auction-client/internal/repository SessionDB

import (
	"auction-client/internal/biddingerrors"
	"context"
	"fmt"
	"sync"
)

// Slot keys for the persisted session
const (
	SlotToken    = "session.token"
	SlotIdentity = "session.identity"
)

// SessionDB is durable key-value storage for the session slots.
// SetAll and Delete apply to all given keys or none of them.
type SessionDB interface {
	Get(ctx context.Context, key string) (string, error)
	SetAll(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of SessionDB
type MemoryRepo struct {
	mu    sync.RWMutex
	slots map[string]string // key: slot name -> value: serialized slot
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		slots: make(map[string]string),
	}
}

// Get returns the value stored under key
func (r *MemoryRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.slots[key]
	if !ok {
		return "", fmt.Errorf("get slot %s: %w", key, biddingerrors.ErrSlotEmpty)
	}
	return v, nil
}

// SetAll stores every key/value pair under a single lock
func (r *MemoryRepo) SetAll(_ context.Context, values map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range values {
		if k == "" {
			return fmt.Errorf("set slots: empty key")
		}
	}
	for k, v := range values {
		r.slots[k] = v
	}
	return nil
}

// Delete removes keys; missing keys are ignored
func (r *MemoryRepo) Delete(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range keys {
		delete(r.slots, k)
	}
	return nil
}

// Len returns the number of stored slots. This method is intended for tests only.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}
