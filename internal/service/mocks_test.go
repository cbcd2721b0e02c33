package service

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// mockKV is an in-memory KVStore with optional per-call error injection.
type mockKV struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	putErr error
	delErr error
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string]string)}
}

func (m *mockKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *mockKV) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func (m *mockKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *mockKV) set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *mockKV) get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	return value, ok
}

// testLogger returns a logger that stays quiet during tests.
func testLogger() *zap.Logger {
	return zap.NewNop()
}
