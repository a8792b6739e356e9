package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"animexplorer/internal/models"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is the single-process store. States are kept serialised so a
// caller mutating a loaded state never touches the stored copy.
type MemoryStore struct {
	m    *sync.Mutex
	data map[string]memoryEntry
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		m:    new(sync.Mutex),
		data: map[string]memoryEntry{},
		ttl:  ttl,
		now:  time.Now,
	}
}

func (ms *MemoryStore) Load(_ context.Context, id string) (*models.SessionState, error) {
	ms.m.Lock()
	defer ms.m.Unlock()

	entry, ok := ms.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	if ms.now().After(entry.expiresAt) {
		delete(ms.data, id)
		return nil, ErrNotFound
	}

	var state models.SessionState
	if err := json.Unmarshal(entry.data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &state, nil
}

func (ms *MemoryStore) Save(_ context.Context, id string, state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	ms.m.Lock()
	defer ms.m.Unlock()
	ms.sweep()
	ms.data[id] = memoryEntry{data: data, expiresAt: ms.now().Add(ms.ttl)}
	return nil
}

func (ms *MemoryStore) Delete(_ context.Context, id string) error {
	ms.m.Lock()
	defer ms.m.Unlock()
	delete(ms.data, id)
	return nil
}

func (ms *MemoryStore) Close() error { return nil }

// Len counts live sessions.
func (ms *MemoryStore) Len() int {
	ms.m.Lock()
	defer ms.m.Unlock()
	ms.sweep()
	return len(ms.data)
}

// caller holds the lock
func (ms *MemoryStore) sweep() {
	now := ms.now()
	for id, entry := range ms.data {
		if now.After(entry.expiresAt) {
			delete(ms.data, id)
		}
	}
}
