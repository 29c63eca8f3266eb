package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"roomledger/internal/room"
)

func rooms() []room.Room {
	return []room.Room{
		{ID: 1, HolderName: "Asha Sharma", Rent: 5000, LightUnits: 15, Occupied: true},
		{ID: 2, HolderName: "", Rent: 3000},
		{ID: 3, HolderName: "Ravi", Rent: 4500, LightUnits: 40, Occupied: true, Reminders: []string{"meter"}},
		{ID: 4, HolderName: "Neel Sharma", Rent: 6000},
	}
}

func ids(rs []room.Room) []int {
	out := []int{}
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		src  string
		want []int
	}{
		{"", []int{1, 2, 3, 4}},
		{"vacant", []int{2, 4}},
		{"!occupied && rent > 4000", []int{4}},
		{`holder_name contains "Sharma"`, []int{1, 4}},
		{"light_units * 10 + rent >= 4900", []int{1, 3, 4}},
		{"len(reminders) > 0", []int{3}},
		{"room_id in [1, 3]", []int{1, 3}},
		{`holder_name == ""`, []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := Compile(tt.src)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.src, err)
			}
			got, err := f.Apply(rooms())
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	for _, src := range []string{
		"rent + 1",        // not boolean
		"tenant == 'x'",   // unknown variable
		"rent >",          // syntax
		`holder_name > 3`, // type mismatch
	} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) should fail", src)
		}
	}
}

func TestNilFilterMatchesAll(t *testing.T) {
	var f *Filter
	ok, err := f.Match(room.Room{ID: 1})
	if err != nil || !ok {
		t.Errorf("nil filter Match = %v, %v; want true, nil", ok, err)
	}
}
