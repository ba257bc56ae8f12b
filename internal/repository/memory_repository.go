package repository

import (
	"context"
	"sync"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/store"
)

// MemoryRepository keeps records in process memory. Records do not survive a restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryRepository creates an empty in-memory record repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string][]byte),
	}
}

// GetRecord implements store.RecordRepository
func (r *MemoryRepository) GetRecord(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.records[key]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return append([]byte(nil), data...), nil
}

// PutRecord implements store.RecordRepository
func (r *MemoryRepository) PutRecord(_ context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[key] = append([]byte(nil), data...)
	return nil
}

// Size returns the number of stored records
func (r *MemoryRepository) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
