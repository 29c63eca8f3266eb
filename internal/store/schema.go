package store

// schemaVersion is the layout written by this build.
const schemaVersion = 1

// schemaDDL creates the room tables on a fresh database. Reminders keep their
// order through seq; rooms keep insertion order through position.
var schemaDDL = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS rooms (
	room_id     INTEGER PRIMARY KEY,
	position    INTEGER NOT NULL,
	holder_name TEXT    NOT NULL DEFAULT '',
	rent        INTEGER NOT NULL DEFAULT 0,
	light_units INTEGER NOT NULL DEFAULT 0,
	occupied    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS reminders (
	room_id INTEGER NOT NULL REFERENCES rooms(room_id) ON DELETE CASCADE,
	seq     INTEGER NOT NULL,
	text    TEXT    NOT NULL,
	PRIMARY KEY (room_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_rooms_position ON rooms(position);
`
