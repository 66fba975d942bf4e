package repository

import (
	"context"
	"sync"
)

var _ KeyValue = (*InMemoryKV)(nil)

type InMemoryKV struct {
	store map[string]string

	mu sync.RWMutex
}

func NewInMemoryKV() *InMemoryKV {
	return &InMemoryKV{
		store: make(map[string]string),
	}
}

func (r *InMemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.store[key]
	return v, ok, nil
}

func (r *InMemoryKV) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[key] = value
	return nil
}

func (r *InMemoryKV) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, key)
	return nil
}
