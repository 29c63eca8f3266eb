package store

import (
	"sync"

	"roomledger/internal/room"
)

// MemBackend is an in-memory Backend for tests and dry runs.
type MemBackend struct {
	mu      sync.Mutex
	rooms   []room.Room
	loadErr error
	saveErr error
	saves   int
}

// NewMemBackend returns an empty in-memory backend.
func NewMemBackend(rooms ...room.Room) *MemBackend {
	return &MemBackend{rooms: room.CloneAll(rooms)}
}

// Location implements Backend.
func (m *MemBackend) Location() string { return "memory" }

// Close implements Backend.
func (m *MemBackend) Close() error { return nil }

// Load implements Backend.
func (m *MemBackend) Load() ([]room.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return room.CloneAll(m.rooms), nil
}

// Save implements Backend.
func (m *MemBackend) Save(rooms []room.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.rooms = room.CloneAll(rooms)
	m.saves++
	return nil
}

// FailLoad makes subsequent Loads return err (nil clears it).
func (m *MemBackend) FailLoad(err error) {
	m.mu.Lock()
	m.loadErr = err
	m.mu.Unlock()
}

// FailSave makes subsequent Saves return err (nil clears it).
func (m *MemBackend) FailSave(err error) {
	m.mu.Lock()
	m.saveErr = err
	m.mu.Unlock()
}

// Saves reports how many successful writes happened.
func (m *MemBackend) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
