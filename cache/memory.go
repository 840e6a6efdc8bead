package cache

import (
	"context"
	"sync"

	"github.com/katalvlaran/pathviz/search"
)

// Memory is a bounded in-process Store. When full, the oldest inserted
// entry is evicted.
type Memory struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*search.Result
	order    []string // insertion order, oldest first
}

// NewMemory returns a Memory holding at most capacity entries.
// A capacity below one is treated as one.
func NewMemory(capacity int) *Memory {
	if capacity < 1 {
		capacity = 1
	}

	return &Memory{
		capacity: capacity,
		entries:  make(map[string]*search.Result, capacity),
		order:    make([]string, 0, capacity),
	}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) (*search.Result, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.entries[key]

	return res, ok, nil
}

// Put implements Store.
func (m *Memory) Put(_ context.Context, key string, res *search.Result) error {
	if res == nil {
		return ErrNilResult
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; ok {
		m.entries[key] = res
		return nil
	}
	if len(m.order) == m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
	m.entries[key] = res
	m.order = append(m.order, key)

	return nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}
