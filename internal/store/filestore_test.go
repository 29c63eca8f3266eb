package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"roomledger/internal/room"
)

func TestFileBackend_MissingFileIsEmpty(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "nope", "rooms.json"))
	rooms, err := b.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("Load = %+v, want empty", rooms)
	}
}

func TestFileBackend_LegacyRecordWithoutReminders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	legacy := `[
    {
        "room_id": 1,
        "holder_name": "Asha",
        "rent": 5000,
        "occupied": true,
        "light_units": 0
    }
]`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}
	rooms, err := NewFileBackend(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []room.Room{{ID: 1, HolderName: "Asha", Rent: 5000, Occupied: true, Reminders: []string{}}}
	if diff := cmp.Diff(want, rooms); diff != "" {
		t.Errorf("legacy load mismatch (-want +got):\n%s", diff)
	}
}

func TestFileBackend_NullIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	if err := os.WriteFile(path, []byte("null\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rooms, err := NewFileBackend(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rooms == nil || len(rooms) != 0 {
		t.Errorf("Load(null) = %#v, want empty non-nil", rooms)
	}
}

func TestFileBackend_CorruptFileLeftIntact(t *testing.T) {
	tests := map[string]string{
		"garbage":     "{not json",
		"empty":       "",
		"whitespace":  "  \n\t",
		"wrong shape": `{"room_id": 1}`,
		"float rent":  `[{"room_id": 1, "rent": 10.5}]`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rooms.json")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			s := New(NewFileBackend(path))

			_, err := s.List()
			var re *StorageReadError
			if !errors.As(err, &re) {
				t.Fatalf("List: err = %v, want StorageReadError", err)
			}
			if re.Location != path {
				t.Errorf("Location = %q, want %q", re.Location, path)
			}
			if err := s.AddRoom(room.Room{ID: 9}); !errors.Is(err, ErrStorageRead) {
				t.Errorf("AddRoom on corrupt file: err = %v, want ErrStorageRead", err)
			}

			after, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(after) != content {
				t.Errorf("corrupt file modified: got %q, want %q", after, content)
			}
		})
	}
}

func TestFileBackend_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	b := NewFileBackend(path)
	if err := b.Save([]room.Room{{ID: 1, HolderName: "A&B", Rent: 10, Reminders: []string{}}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{`    {`, `        "room_id": 1,`, `"holder_name": "A&B"`, `"reminders": []`} {
		if !strings.Contains(out, want) {
			t.Errorf("saved file missing %q:\n%s", want, out)
		}
	}
}

func TestFileBackend_SaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	if err := NewFileBackend(path).Save(nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("Save(nil) wrote %q, want []", data)
	}
}

func TestFileBackend_SaveCreatesDirAndLeavesNoTemp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	path := filepath.Join(dir, "rooms.json")
	b := NewFileBackend(path)
	for i := 1; i <= 3; i++ {
		if err := b.Save([]room.Room{{ID: i}}); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "rooms.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir entries = %v, want only rooms.json", names)
	}
	rooms, _ := b.Load()
	if len(rooms) != 1 || rooms[0].ID != 3 {
		t.Errorf("Load after saves = %+v, want room 3", rooms)
	}
}

func TestFileBackend_WriteFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	b := NewFileBackend(filepath.Join(blocker, "rooms.json"))
	err := b.Save([]room.Room{{ID: 1}})
	if !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("Save under a file: err = %v, want ErrStorageWrite", err)
	}
	data, _ := os.ReadFile(blocker)
	if string(data) != "x" {
		t.Errorf("blocker file modified: %q", data)
	}
}
