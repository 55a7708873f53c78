// Package store keeps generated graphics until they are downloaded.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/youruser/clubposts/internal/graphic"
)

var ErrNotFound = errors.New("graphic not found")

type GraphicStore interface {
	Save(ctx context.Context, g graphic.Generated) error
	Get(ctx context.Context, id string) (graphic.Generated, error)
	// List returns graphics newest first.
	List(ctx context.Context) ([]graphic.Generated, error)
}

type MemoryStore struct {
	mu       sync.RWMutex
	graphics map[string]graphic.Generated
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{graphics: map[string]graphic.Generated{}}
}

func (m *MemoryStore) Save(_ context.Context, g graphic.Generated) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.graphics[g.ID] = g
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (graphic.Generated, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.graphics[id]
	if !ok {
		return graphic.Generated{}, ErrNotFound
	}
	return g, nil
}

func (m *MemoryStore) List(_ context.Context) ([]graphic.Generated, error) {
	m.mu.RLock()
	out := make([]graphic.Generated, 0, len(m.graphics))
	for _, g := range m.graphics {
		out = append(out, g)
	}
	m.mu.RUnlock()
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(gs []graphic.Generated) {
	sort.Slice(gs, func(i, j int) bool {
		if !gs[i].GeneratedAt.Equal(gs[j].GeneratedAt) {
			return gs[i].GeneratedAt.After(gs[j].GeneratedAt)
		}
		return gs[i].ID < gs[j].ID
	})
}
