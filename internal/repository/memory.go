package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/joeynweke/restaurant-dashboard/internal/port"
)

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory keeps entries for the lifetime of the process only.
func NewMemory() port.KeyValueStore {
	return &memoryRepository{
		entries: make(map[string][]byte),
	}
}

func (r *memoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.entries[key]
	if !ok {
		return nil, port.ErrNotFound
	}

	return append([]byte{}, value...), nil
}

func (r *memoryRepository) Put(_ context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = append([]byte{}, value...)

	return nil
}

func (r *memoryRepository) Delete(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("key is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[key]
	delete(r.entries, key)

	return ok, nil
}
