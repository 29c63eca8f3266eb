// Package filter selects rooms with boolean expressions such as
// `rent > 4000 && vacant` or `holder_name contains "Sharma"`.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"roomledger/internal/room"
)

// Filter is a compiled room predicate. The zero value matches every room.
type Filter struct {
	src     string
	program *vm.Program
}

// env exposes room fields under their stored key names.
func env(r room.Room) map[string]any {
	reminders := r.Reminders
	if reminders == nil {
		reminders = []string{}
	}
	return map[string]any{
		"room_id":     r.ID,
		"holder_name": r.HolderName,
		"rent":        r.Rent,
		"light_units": r.LightUnits,
		"occupied":    r.Occupied,
		"vacant":      !r.Occupied,
		"reminders":   reminders,
	}
}

// Compile type-checks src against the room variables. Unknown variables and
// non-boolean results are errors. Blank src yields a match-all filter.
func Compile(src string) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return &Filter{}, nil
	}
	program, err := expr.Compile(src, expr.Env(env(room.Room{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{src: src, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.src }

// Match reports whether r satisfies the filter.
func (f *Filter) Match(r room.Room) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, env(r))
	if err != nil {
		return false, fmt.Errorf("evaluate filter on room %d: %w", r.ID, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the matching rooms in collection order.
func (f *Filter) Apply(rooms []room.Room) ([]room.Room, error) {
	out := make([]room.Room, 0, len(rooms))
	for _, r := range rooms {
		ok, err := f.Match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}
