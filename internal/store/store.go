// Package store owns the room collection on disk. Every read loads the whole
// collection from a Backend and every mutation writes the whole collection
// back; there are no partial updates.
package store

import (
	"fmt"
	"log/slog"
	"sync"

	"roomledger/internal/logging"
	"roomledger/internal/room"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultPath is the JSON file used when no path is configured.
const DefaultPath = "rooms.json"

// DefaultDBPath is the SQLite file used when the sqlite backend has no path.
const DefaultDBPath = "rooms.db"

// Backend is a storage medium holding one ordered room collection.
// Load on a missing medium returns an empty collection and no error.
type Backend interface {
	Load() ([]room.Room, error)
	Save(rooms []room.Room) error
	Location() string
	Close() error
}

// Store is the persistence facade used by the CLI and the MCP server.
// A mutex serializes read-modify-write cycles within one process; separate
// processes sharing a file are not coordinated.
type Store struct {
	mu      sync.Mutex
	backend Backend
	log     *slog.Logger
}

// New wraps a backend.
func New(b Backend) *Store {
	return &Store{backend: b, log: logging.New("store")}
}

// Open builds a Store for the named backend. An empty kind means JSON; an
// empty path means the backend's default file.
func Open(kind, path string) (*Store, error) {
	switch kind {
	case "", BackendJSON:
		if path == "" {
			path = DefaultPath
		}
		return New(NewFileBackend(path)), nil
	case BackendSQLite:
		if path == "" {
			path = DefaultDBPath
		}
		return New(OpenSQL(path)), nil
	case BackendMemory:
		return New(NewMemBackend()), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want json, sqlite or memory)", kind)
	}
}

// Location describes where the collection lives, for messages.
func (s *Store) Location() string { return s.backend.Location() }

// Close releases the backend.
func (s *Store) Close() error { return s.backend.Close() }

// List returns every persisted room in insertion order.
func (s *Store) List() ([]room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// FindByID returns the room with the given id, or nil when there is none.
func (s *Store) FindByID(id int) (*room.Room, error) {
	rooms, err := s.List()
	if err != nil {
		return nil, err
	}
	i := room.Index(rooms, id)
	if i < 0 {
		return nil, nil
	}
	r := rooms[i]
	return &r, nil
}

// Save replaces the persisted collection with rooms.
func (s *Store) Save(rooms []room.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(rooms)
}

// AddRoom appends r. The id must not already be present.
func (s *Store) AddRoom(r room.Room) error {
	return s.AddRooms([]room.Room{r})
}

// AddRooms appends several rooms in one write. Any id collision, with the
// stored collection or within rs, rejects the whole batch.
func (s *Store) AddRooms(rs []room.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms, err := s.load()
	if err != nil {
		return err
	}
	for _, r := range rs {
		if room.Index(rooms, r.ID) >= 0 {
			return &DuplicateIDError{ID: r.ID}
		}
		r = r.Clone()
		r.Normalize()
		rooms = append(rooms, r)
	}
	if err := s.save(rooms); err != nil {
		return err
	}
	s.log.Info("rooms added", "count", len(rs), "total", len(rooms))
	return nil
}

// UpdateRoom applies p to the room with the given id and returns the result.
func (s *Store) UpdateRoom(id int, p room.Patch) (room.Room, error) {
	return s.mutate(id, "room updated", func(r *room.Room) { p.Apply(r) })
}

// AppendReminder adds text to the end of a room's reminders.
func (s *Store) AppendReminder(id int, text string) (room.Room, error) {
	return s.mutate(id, "reminder added", func(r *room.Room) {
		r.Reminders = append(r.Reminders, text)
	})
}

// DeleteRoom removes a room, keeping the order of the others.
func (s *Store) DeleteRoom(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms, err := s.load()
	if err != nil {
		return err
	}
	i := room.Index(rooms, id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	rooms = append(rooms[:i], rooms[i+1:]...)
	if err := s.save(rooms); err != nil {
		return err
	}
	s.log.Info("room deleted", "room_id", id)
	return nil
}

func (s *Store) mutate(id int, msg string, fn func(*room.Room)) (room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms, err := s.load()
	if err != nil {
		return room.Room{}, err
	}
	i := room.Index(rooms, id)
	if i < 0 {
		return room.Room{}, &NotFoundError{ID: id}
	}
	fn(&rooms[i])
	rooms[i].ID = id
	if err := s.save(rooms); err != nil {
		return room.Room{}, err
	}
	s.log.Info(msg, "room_id", id)
	return rooms[i].Clone(), nil
}

func (s *Store) load() ([]room.Room, error) {
	rooms, err := s.backend.Load()
	if err != nil {
		return nil, readError(s.backend.Location(), err)
	}
	if rooms == nil {
		rooms = []room.Room{}
	}
	for i := range rooms {
		rooms[i].Normalize()
	}
	s.log.Debug("rooms loaded", "location", s.backend.Location(), "count", len(rooms))
	return rooms, nil
}

func (s *Store) save(rooms []room.Room) error {
	if id, dup := room.FirstDuplicate(rooms); dup {
		return &DuplicateIDError{ID: id}
	}
	if err := s.backend.Save(room.CloneAll(rooms)); err != nil {
		return writeError(s.backend.Location(), err)
	}
	return nil
}
