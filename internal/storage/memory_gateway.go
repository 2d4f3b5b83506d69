package storage

import (
	"context"
	"sync"
)

// MemoryGateway keeps documents in a map. Used by tests and by ephemeral
// runs that pass an empty data path.
type MemoryGateway struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{docs: make(map[string][]byte)}
}

func (g *MemoryGateway) Load(_ context.Context, key string) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	doc, ok := g.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (g *MemoryGateway) Save(_ context.Context, key string, doc []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	stored := make([]byte, len(doc))
	copy(stored, doc)
	g.docs[key] = stored
	return nil
}

func (g *MemoryGateway) Close() error { return nil }
