// Package blobs stores sealed item payloads by opaque key. The store only
// ever sees ciphertext.
package blobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/google/uuid"
)

// Store is a key/value store for ciphertext blobs.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	// Get returns common.ErrorNotFound for an unknown key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete is a no-op for an unknown key.
	Delete(ctx context.Context, key string) error
}

// NewKey returns a fresh storage key for a payload of owner. Every write of
// an item gets a new key so that the previous blob stays intact until the
// row pointing at it has been replaced.
func NewKey(owner models.AccountID) string {
	d := time.Now().UTC()
	return fmt.Sprintf("items/%s/%d/%02d/%s", owner, d.Year(), d.Month(), uuid.New())
}

// MemoryStore keeps blobs in process memory. Used in tests and by the
// "memory" blob backend.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = buf
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

// Keys returns the stored keys. Handy for asserting that nothing leaked.
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.blobs))
	for k := range m.blobs {
		keys = append(keys, k)
	}
	return keys
}
