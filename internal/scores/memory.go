package scores

import (
	"context"
	"sync"
)

// Memory keeps entries in process memory.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{}
}

// Record stores entry after filling in its ID and time.
func (m *Memory) Record(ctx context.Context, entry Entry) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	entry, err := prepare(entry)
	if err != nil {
		return Entry{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	rank(m.entries)
	return entry, nil
}

// Top returns up to n entries, highest score first.
func (m *Memory) Top(ctx context.Context, n int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	n = min(max(n, 0), len(m.entries))
	out := make([]Entry, n)
	copy(out, m.entries[:n])
	return out, nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
