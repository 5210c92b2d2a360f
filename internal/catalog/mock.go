package catalog

import (
	"context"
	"fmt"
	"sync"
)

// Mock is an in-memory Fetcher for tests and offline use. Unknown slugs
// return ErrNotFound.
type Mock struct {
	mu       sync.Mutex
	problems map[string]Metadata
	// Err, when set, is returned by every Fetch.
	Err   error
	Calls []string
}

// NewMock creates a Mock knowing the given problems.
func NewMock(problems ...Metadata) *Mock {
	m := &Mock{problems: make(map[string]Metadata, len(problems))}
	for _, p := range problems {
		m.problems[p.Slug] = p
	}
	return m
}

func (m *Mock) Fetch(_ context.Context, slug string) (*Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, slug)
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.problems[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return &p, nil
}

// CallCount returns the number of Fetch calls made.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
