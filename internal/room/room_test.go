package room

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func TestNormalize_NilReminders(t *testing.T) {
	r := Room{ID: 1}
	r.Normalize()
	if r.Reminders == nil || len(r.Reminders) != 0 {
		t.Errorf("Reminders = %#v, want empty non-nil slice", r.Reminders)
	}
}

func TestClone_DoesNotShareReminders(t *testing.T) {
	r := Room{ID: 1, Reminders: []string{"pay water"}}
	c := r.Clone()
	c.Reminders[0] = "changed"
	if r.Reminders[0] != "pay water" {
		t.Errorf("original mutated through clone: %q", r.Reminders[0])
	}
}

func TestPatch_Apply(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
		want  Room
	}{
		{
			name:  "empty keeps everything",
			patch: Patch{},
			want:  Room{ID: 7, HolderName: "Asha", Rent: 5000, LightUnits: 3, Occupied: true},
		},
		{
			name:  "light units only",
			patch: Patch{LightUnits: ptr(15)},
			want:  Room{ID: 7, HolderName: "Asha", Rent: 5000, LightUnits: 15, Occupied: true},
		},
		{
			name:  "all fields",
			patch: Patch{HolderName: ptr(""), Rent: ptr(4200), LightUnits: ptr(0), Occupied: ptr(false)},
			want:  Room{ID: 7, HolderName: "", Rent: 4200, LightUnits: 0, Occupied: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Room{ID: 7, HolderName: "Asha", Rent: 5000, LightUnits: 3, Occupied: true}
			tt.patch.Apply(&r)
			if diff := cmp.Diff(tt.want, r); diff != "" {
				t.Errorf("Apply mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatch_Empty(t *testing.T) {
	if !(Patch{}).Empty() {
		t.Error("zero Patch should be empty")
	}
	if (Patch{Occupied: ptr(false)}).Empty() {
		t.Error("patch with Occupied set should not be empty")
	}
}

func TestVacant(t *testing.T) {
	rooms := []Room{
		{ID: 1, Occupied: true},
		{ID: 2},
		{ID: 3, Occupied: true},
		{ID: 4},
	}
	var ids []int
	for _, r := range Vacant(rooms) {
		ids = append(ids, r.ID)
	}
	if diff := cmp.Diff([]int{2, 4}, ids); diff != "" {
		t.Errorf("Vacant ids mismatch (-want +got):\n%s", diff)
	}
	if got := Vacant([]Room{{ID: 1, Occupied: true}}); len(got) != 0 {
		t.Errorf("Vacant on fully occupied = %v, want none", got)
	}
}

func TestIndexAndFirstDuplicate(t *testing.T) {
	rooms := []Room{{ID: 10}, {ID: 20}, {ID: 10}}
	if got := Index(rooms, 20); got != 1 {
		t.Errorf("Index(20) = %d, want 1", got)
	}
	if got := Index(rooms, 99); got != -1 {
		t.Errorf("Index(99) = %d, want -1", got)
	}
	id, ok := FirstDuplicate(rooms)
	if !ok || id != 10 {
		t.Errorf("FirstDuplicate = (%d, %v), want (10, true)", id, ok)
	}
	if _, ok := FirstDuplicate(rooms[:2]); ok {
		t.Error("FirstDuplicate reported a duplicate in a unique collection")
	}
}
