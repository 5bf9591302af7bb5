package records

import (
	"context"
	"sync"
)

// InMemoryRepository keeps records in insertion order for the lifetime of
// the process.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// List returns a copy of all records. The result is never nil.
func (r *InMemoryRepository) List(ctx context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Create appends a record whose id is the current record count plus one.
func (r *InMemoryRepository) Create(ctx context.Context, content string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := Record{ID: int64(len(r.records)) + 1, Content: content}
	r.records = append(r.records, rec)
	return rec, nil
}
