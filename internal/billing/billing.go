// Package billing computes the monthly charge for a room: rent plus
// electricity consumed at a flat per-unit rate.
package billing

import "roomledger/internal/room"

// DefaultFlatRate is the per-unit light charge when none is configured.
const DefaultFlatRate = 10

// LightBill returns the electricity charge for units at rate.
func LightBill(units, rate int) int {
	return units * rate
}

// Total returns rent plus the light bill for r.
func Total(r room.Room, rate int) int {
	return r.Rent + LightBill(r.LightUnits, rate)
}

// Statement is the bill breakdown for one room.
type Statement struct {
	RoomID     int    `json:"room_id"`
	HolderName string `json:"holder_name"`
	Rent       int    `json:"rent"`
	LightUnits int    `json:"light_units"`
	LightBill  int    `json:"light_bill"`
	Total      int    `json:"total"`
}

// For builds the statement for a single room.
func For(r room.Room, rate int) Statement {
	light := LightBill(r.LightUnits, rate)
	return Statement{
		RoomID:     r.ID,
		HolderName: r.HolderName,
		Rent:       r.Rent,
		LightUnits: r.LightUnits,
		LightBill:  light,
		Total:      r.Rent + light,
	}
}

// Statements returns one statement per room, in collection order.
func Statements(rooms []room.Room, rate int) []Statement {
	out := make([]Statement, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, For(r, rate))
	}
	return out
}

// Summary sums a set of statements.
type Summary struct {
	Rooms     int `json:"rooms"`
	Rent      int `json:"rent"`
	LightBill int `json:"light_bill"`
	Total     int `json:"total"`
}

// Summarize totals the statements.
func Summarize(stmts []Statement) Summary {
	s := Summary{Rooms: len(stmts)}
	for _, st := range stmts {
		s.Rent += st.Rent
		s.LightBill += st.LightBill
		s.Total += st.Total
	}
	return s
}
