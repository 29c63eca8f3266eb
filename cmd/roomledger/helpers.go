package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"roomledger/internal/room"
	"roomledger/internal/store"
)

// parseRoomID validates a positional room id.
func parseRoomID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid room id %q: must be a whole number", s)
	}
	return id, nil
}

func checkNonNegative(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("--%s must not be negative, got %d", name, v)
	}
	return nil
}

// readRooms lists the collection for read-only commands. An unreadable store
// is reported on stderr and treated as empty.
func (a *app) readRooms(cmd *cobra.Command) []room.Room {
	rooms, err := a.store.List()
	if err == nil {
		return rooms
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	var rerr *store.StorageReadError
	if errors.As(err, &rerr) {
		a.log.Warn("continuing with an empty collection", "location", rerr.Location)
	}
	return []room.Room{}
}

// findRoom looks id up in a collection obtained from readRooms.
func findRoom(rooms []room.Room, id int) (room.Room, error) {
	i := room.Index(rooms, id)
	if i < 0 {
		return room.Room{}, &store.NotFoundError{ID: id}
	}
	return rooms[i], nil
}
