package storage

import (
	"context"
	"maps"
	"net/url"
	"slices"
	"sync"
	"time"
)

// MemoryObjectStorage keeps objects in process memory and hands out
// file-style URLs. It serves single-node development setups and tests.
type MemoryObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
	now     func() time.Time
	expiry  time.Duration
}

// NewMemoryObjectStorage creates an empty store. baseURL prefixes download links.
func NewMemoryObjectStorage(baseURL string) *MemoryObjectStorage {
	return &MemoryObjectStorage{
		objects: make(map[string][]byte),
		baseURL: baseURL,
		now:     time.Now,
		expiry:  defaultPresignExpiry,
	}
}

// Upload stores a copy of data under key
func (m *MemoryObjectStorage) Upload(_ context.Context, key string, data []byte, _ string) error {
	if key == "" {
		return ErrKeyRequired
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
	return nil
}

// DownloadURL returns baseURL/key with an expires query parameter
func (m *MemoryObjectStorage) DownloadURL(_ context.Context, key string) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, ErrKeyRequired
	}
	expiresAt := m.now().Add(m.expiry)
	u := m.baseURL + "/" + url.PathEscape(key) + "?expires=" + url.QueryEscape(expiresAt.UTC().Format(time.RFC3339))
	return u, expiresAt, nil
}

// Delete removes key; missing keys are ignored
func (m *MemoryObjectStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Object returns the stored bytes of key
func (m *MemoryObjectStorage) Object(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	return data, ok
}

// Keys returns every stored key in sorted order
func (m *MemoryObjectStorage) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := slices.Collect(maps.Keys(m.objects))
	slices.Sort(keys)
	return keys
}
