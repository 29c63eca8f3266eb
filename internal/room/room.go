// Package room defines the room record kept by the ledger and the small
// helpers that operate on a loaded collection.
package room

// Room is one rented unit. JSON keys match the on-disk file written by earlier
// versions of the tool, so existing rooms.json files load unchanged.
type Room struct {
	ID         int      `json:"room_id" yaml:"room_id"`
	HolderName string   `json:"holder_name" yaml:"holder_name"`
	Rent       int      `json:"rent" yaml:"rent"`
	LightUnits int      `json:"light_units" yaml:"light_units"`
	Occupied   bool     `json:"occupied" yaml:"occupied"`
	Reminders  []string `json:"reminders" yaml:"reminders"` // absent on old records; never nil after Normalize
}

// Normalize fills defaults for fields that older files may omit.
func (r *Room) Normalize() {
	if r.Reminders == nil {
		r.Reminders = []string{}
	}
}

// Clone returns a deep copy; the reminders slice is not shared.
func (r Room) Clone() Room {
	out := r
	out.Reminders = make([]string, len(r.Reminders))
	copy(out.Reminders, r.Reminders)
	return out
}

// Patch is a partial update. Nil fields keep the current value.
type Patch struct {
	HolderName *string `json:"holder_name,omitempty"`
	Rent       *int    `json:"rent,omitempty"`
	LightUnits *int    `json:"light_units,omitempty"`
	Occupied   *bool   `json:"occupied,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.HolderName == nil && p.Rent == nil && p.LightUnits == nil && p.Occupied == nil
}

// Apply writes the set fields of p onto r. The room id is never touched.
func (p Patch) Apply(r *Room) {
	if p.HolderName != nil {
		r.HolderName = *p.HolderName
	}
	if p.Rent != nil {
		r.Rent = *p.Rent
	}
	if p.LightUnits != nil {
		r.LightUnits = *p.LightUnits
	}
	if p.Occupied != nil {
		r.Occupied = *p.Occupied
	}
}

// CloneAll deep-copies a collection, normalizing each record.
func CloneAll(rooms []Room) []Room {
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = r.Clone()
		out[i].Normalize()
	}
	return out
}

// Index returns the position of the room with the given id, or -1.
func Index(rooms []Room, id int) int {
	for i := range rooms {
		if rooms[i].ID == id {
			return i
		}
	}
	return -1
}

// Vacant returns the unoccupied rooms in collection order.
func Vacant(rooms []Room) []Room {
	var out []Room
	for _, r := range rooms {
		if !r.Occupied {
			out = append(out, r)
		}
	}
	return out
}

// FirstDuplicate returns the first id that appears more than once.
func FirstDuplicate(rooms []Room) (int, bool) {
	seen := make(map[int]struct{}, len(rooms))
	for _, r := range rooms {
		if _, ok := seen[r.ID]; ok {
			return r.ID, true
		}
		seen[r.ID] = struct{}{}
	}
	return 0, false
}
