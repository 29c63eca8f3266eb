package format

import (
	"fmt"
	"strings"

	"roomledger/internal/billing"
	"roomledger/internal/display"
	"roomledger/internal/room"
)

// RoomColumns are the headers of the room table.
var RoomColumns = []string{"Room ID", "Holder Name", "Rent", "Light Units", "Occupied", "Reminders"}

// MaxCellWidth caps free-text cells in ASCII and Markdown tables.
const MaxCellWidth = 32

// RoomTable renders the full room table. Amounts are printed raw so the CSV
// output stays numeric; CSV cells are never truncated.
func RoomTable(rooms []room.Room, m Mode) string {
	cell := func(s string) string {
		if m == CSV {
			return s
		}
		return Truncate(s, MaxCellWidth)
	}
	tb := NewTable(m)
	tb.Header(RoomColumns...)
	for _, r := range rooms {
		tb.Row(r.ID, cell(r.HolderName), r.Rent, r.LightUnits, display.YesNo(r.Occupied), cell(Reminders(r.Reminders)))
	}
	tb.Columns(
		ColumnConfig{Number: 1, Align: AlignCenter},
		ColumnConfig{Number: 3, Align: AlignRight},
		ColumnConfig{Number: 4, Align: AlignRight},
		ColumnConfig{Number: 5, Align: AlignCenter},
	)
	return tb.String()
}

// BillTable renders one line per statement plus a totals footer.
func BillTable(stmts []billing.Statement, currency string, m Mode) string {
	tb := NewTable(m)
	tb.Header("Room ID", "Holder Name", "Rent", "Light Units", "Light Bill", "Total Bill")
	for _, s := range stmts {
		tb.Row(s.RoomID, s.HolderName,
			display.Money(currency, s.Rent), s.LightUnits,
			display.Money(currency, s.LightBill), display.Money(currency, s.Total))
	}
	sum := billing.Summarize(stmts)
	tb.Footer("", "TOTAL", display.Money(currency, sum.Rent), "",
		display.Money(currency, sum.LightBill), display.Money(currency, sum.Total))
	tb.Columns(
		ColumnConfig{Number: 3, Align: AlignRight},
		ColumnConfig{Number: 4, Align: AlignRight},
		ColumnConfig{Number: 5, Align: AlignRight},
		ColumnConfig{Number: 6, Align: AlignRight},
	)
	return tb.String()
}

// RentLines is the rent overview: one line per room.
func RentLines(rooms []room.Room, currency string) string {
	if len(rooms) == 0 {
		return "No rooms available."
	}
	lines := make([]string, len(rooms))
	for i, r := range rooms {
		lines[i] = fmt.Sprintf("Room %d (%s): Rent = %s | Status = %s",
			r.ID, r.HolderName, display.Money(currency, r.Rent), display.Status(r.Occupied))
	}
	return strings.Join(lines, "\n")
}

// VacantLines lists the vacant rooms among rooms.
func VacantLines(rooms []room.Room) string {
	vacant := room.Vacant(rooms)
	if len(vacant) == 0 {
		return "No vacant rooms available."
	}
	lines := make([]string, len(vacant))
	for i, r := range vacant {
		lines[i] = fmt.Sprintf("Room %d is vacant.", r.ID)
	}
	return strings.Join(lines, "\n")
}

// LightBillLine describes the light bill of one room.
func LightBillLine(s billing.Statement, currency string) string {
	return fmt.Sprintf("Room %d (%s): Light Bill = %s",
		s.RoomID, s.HolderName, display.Money(currency, s.LightBill))
}

// TotalBillLines is the per-room total bill breakdown.
func TotalBillLines(stmts []billing.Statement, currency string) string {
	if len(stmts) == 0 {
		return "No rooms available."
	}
	lines := make([]string, len(stmts))
	for i, s := range stmts {
		lines[i] = fmt.Sprintf("Room %d (%s): Total Bill = %s (Rent: %s + Light Bill: %s)",
			s.RoomID, s.HolderName,
			display.Money(currency, s.Total), display.Money(currency, s.Rent), display.Money(currency, s.LightBill))
	}
	return strings.Join(lines, "\n")
}

// RoomDetail renders one room with its reminders.
func RoomDetail(r room.Room, currency string, rate int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Room:        %d\n", r.ID)
	fmt.Fprintf(&b, "Holder:      %s\n", display.Holder(r.HolderName))
	fmt.Fprintf(&b, "Rent:        %s\n", display.Money(currency, r.Rent))
	fmt.Fprintf(&b, "Light units: %d\n", r.LightUnits)
	fmt.Fprintf(&b, "Status:      %s\n", display.Status(r.Occupied))
	fmt.Fprintf(&b, "Total bill:  %s\n", display.Money(currency, billing.Total(r, rate)))
	if len(r.Reminders) == 0 {
		b.WriteString("Reminders:   none\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Reminders:   (%d)\n", len(r.Reminders))
	for i, text := range r.Reminders {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, text)
	}
	return b.String()
}
