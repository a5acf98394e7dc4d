package catalog

import (
	"fmt"
	"sync"
)

// Memory is an in-process catalog, used by tests and by callers that build
// tables programmatically. It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	items   map[string]map[string]Raw
	records map[string]map[string][]string
}

// NewMemory returns an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{
		items:   make(map[string]map[string]Raw),
		records: make(map[string]map[string][]string),
	}
}

// Add stores raw under collection, keyed by raw.Name.
func (m *Memory) Add(collection string, raw Raw) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items[collection] == nil {
		m.items[collection] = make(map[string]Raw)
	}
	m.items[collection][normalizeKey(raw.Name)] = raw
	return m
}

// AddRecords stores the data records of a record-style item such as a site.
func (m *Memory) AddRecords(collection, key string, records []string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.records[collection] == nil {
		m.records[collection] = make(map[string][]string)
	}
	m.records[collection][normalizeKey(key)] = append([]string(nil), records...)
	return m
}

// Lookup implements Lookup.
func (m *Memory) Lookup(collection, key string) (Raw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.items[collection][normalizeKey(key)]
	if !ok {
		return Raw{}, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, key)
	}
	if len(raw.Wavelengths) != len(raw.Values) || len(raw.Wavelengths) < MinPoints {
		return Raw{}, fmt.Errorf("%w: %q: %d data points", ErrMalformed, raw.Name, len(raw.Wavelengths))
	}
	return raw, nil
}

// Records implements RecordSource.
func (m *Memory) Records(collection, key string, n int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	recs, ok := m.records[collection][normalizeKey(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, key)
	}
	if len(recs) < n {
		return nil, fmt.Errorf("%w: %q: want %d records, got %d", ErrMalformed, key, n, len(recs))
	}
	return append([]string(nil), recs[:n]...), nil
}
