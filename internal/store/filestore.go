package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"roomledger/internal/room"
)

// FileBackend keeps the collection as a JSON array in one file.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend for the JSON file at path. The file is
// not touched until the first Load or Save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Location implements Backend.
func (b *FileBackend) Location() string { return b.path }

// Close implements Backend. No handle is held between operations.
func (b *FileBackend) Close() error { return nil }

// Load implements Backend.
func (b *FileBackend) Load() ([]room.Room, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []room.Room{}, nil
	}
	if err != nil {
		return nil, &StorageReadError{Location: b.path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &StorageReadError{Location: b.path, Err: errors.New("file is empty")}
	}
	var rooms []room.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, &StorageReadError{Location: b.path, Err: fmt.Errorf("parse json: %w", err)}
	}
	if rooms == nil {
		rooms = []room.Room{}
	}
	for i := range rooms {
		rooms[i].Normalize()
	}
	return rooms, nil
}

// Save implements Backend. The new content goes to a temp file in the same
// directory and is renamed over the target, so readers see either the old
// or the new collection.
func (b *FileBackend) Save(rooms []room.Room) error {
	if rooms == nil {
		rooms = []room.Room{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rooms); err != nil {
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("marshal rooms: %w", err)}
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("create dir: %w", err)}
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("create temp: %w", err)}
	}
	tmpName := tmp.Name()
	fail := func(step string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("%s: %w", step, err)}
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fail("write temp", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync temp", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail("chmod temp", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("close temp: %w", err)}
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		_ = os.Remove(tmpName)
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("rename: %w", err)}
	}
	return nil
}
