package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"roomledger/internal/room"

	_ "modernc.org/sqlite"
)

// SQLBackend keeps the collection in a SQLite database. Nothing touches the
// file until the first Load or Save: Load on a missing file returns an empty
// collection without creating it, and the schema is installed by the first
// Save. Calls must be serialized by the caller (Store holds its mutex).
type SQLBackend struct {
	path  string
	db    *sql.DB
	ready bool // schema present at the current version
}

// OpenSQL returns a backend for the SQLite database at path.
func OpenSQL(path string) *SQLBackend {
	return &SQLBackend{path: path}
}

func (b *SQLBackend) open() error {
	if b.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping sqlite: %w", err)
	}
	b.db = db
	return nil
}

// schema reports whether the schema is installed. A version other than
// schemaVersion is an error.
func (b *SQLBackend) schema() (bool, error) {
	var tableCount int
	err := b.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return false, fmt.Errorf("check schema_version table: %w", err)
	}
	if tableCount == 0 {
		return false, nil
	}

	var v int
	err = b.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read schema version: %w", err)
	}
	if v != schemaVersion {
		return false, fmt.Errorf("unknown schema version %d", v)
	}
	return true, nil
}

func (b *SQLBackend) install() error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(schemaDDL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return fmt.Errorf("reset schema version: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

// prepareRead opens an existing database. It reports false when there is
// nothing to read yet: no file, or a database without the schema.
func (b *SQLBackend) prepareRead() (bool, error) {
	if b.ready {
		return true, nil
	}
	if b.db == nil {
		if _, err := os.Stat(b.path); errors.Is(err, fs.ErrNotExist) {
			return false, nil
		} else if err != nil {
			return false, err
		}
		if err := b.open(); err != nil {
			return false, err
		}
	}
	ok, err := b.schema()
	if err != nil {
		return false, err
	}
	b.ready = ok
	return ok, nil
}

// prepareWrite opens or creates the database and installs the schema.
func (b *SQLBackend) prepareWrite() error {
	if b.ready {
		return nil
	}
	if b.db == nil {
		if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
		if err := b.open(); err != nil {
			return err
		}
	}
	ok, err := b.schema()
	if err != nil {
		return err
	}
	if !ok {
		if err := b.install(); err != nil {
			return err
		}
	}
	b.ready = true
	return nil
}

// Location implements Backend.
func (b *SQLBackend) Location() string { return b.path }

// Close implements Backend.
func (b *SQLBackend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.ready = false
	return err
}

// Load implements Backend.
func (b *SQLBackend) Load() ([]room.Room, error) {
	ok, err := b.prepareRead()
	if err != nil {
		return nil, &StorageReadError{Location: b.path, Err: err}
	}
	if !ok {
		return []room.Room{}, nil
	}
	rows, err := b.db.Query(
		`SELECT room_id, holder_name, rent, light_units, occupied
		 FROM rooms ORDER BY position, room_id`,
	)
	if err != nil {
		return nil, &StorageReadError{Location: b.path, Err: fmt.Errorf("query rooms: %w", err)}
	}
	defer rows.Close()

	rooms := []room.Room{}
	byID := make(map[int]int)
	for rows.Next() {
		var r room.Room
		var occupied int64
		if err := rows.Scan(&r.ID, &r.HolderName, &r.Rent, &r.LightUnits, &occupied); err != nil {
			return nil, &StorageReadError{Location: b.path, Err: fmt.Errorf("scan room: %w", err)}
		}
		r.Occupied = occupied == 1
		r.Reminders = []string{}
		byID[r.ID] = len(rooms)
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageReadError{Location: b.path, Err: fmt.Errorf("iterate rooms: %w", err)}
	}

	rrows, err := b.db.Query("SELECT room_id, text FROM reminders ORDER BY room_id, seq")
	if err != nil {
		return nil, &StorageReadError{Location: b.path, Err: fmt.Errorf("query reminders: %w", err)}
	}
	defer rrows.Close()
	for rrows.Next() {
		var id int
		var text string
		if err := rrows.Scan(&id, &text); err != nil {
			return nil, &StorageReadError{Location: b.path, Err: fmt.Errorf("scan reminder: %w", err)}
		}
		if i, ok := byID[id]; ok {
			rooms[i].Reminders = append(rooms[i].Reminders, text)
		}
	}
	if err := rrows.Err(); err != nil {
		return nil, &StorageReadError{Location: b.path, Err: fmt.Errorf("iterate reminders: %w", err)}
	}
	return rooms, nil
}

// Save implements Backend. Both tables are rewritten inside one transaction.
func (b *SQLBackend) Save(rooms []room.Room) error {
	if err := b.prepareWrite(); err != nil {
		return &StorageWriteError{Location: b.path, Err: err}
	}
	tx, err := b.db.Begin()
	if err != nil {
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("begin tx: %w", err)}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM reminders"); err != nil {
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("clear reminders: %w", err)}
	}
	if _, err := tx.Exec("DELETE FROM rooms"); err != nil {
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("clear rooms: %w", err)}
	}
	for pos, r := range rooms {
		occupied := 0
		if r.Occupied {
			occupied = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO rooms(room_id, position, holder_name, rent, light_units, occupied)
			 VALUES(?, ?, ?, ?, ?, ?)`,
			r.ID, pos, r.HolderName, r.Rent, r.LightUnits, occupied,
		); err != nil {
			return &StorageWriteError{Location: b.path, Err: fmt.Errorf("insert room %d: %w", r.ID, err)}
		}
		for seq, text := range r.Reminders {
			if _, err := tx.Exec(
				"INSERT INTO reminders(room_id, seq, text) VALUES(?, ?, ?)",
				r.ID, seq, text,
			); err != nil {
				return &StorageWriteError{Location: b.path, Err: fmt.Errorf("insert reminder for room %d: %w", r.ID, err)}
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return &StorageWriteError{Location: b.path, Err: fmt.Errorf("commit: %w", err)}
	}
	return nil
}
