package format_test

import (
	"strings"
	"testing"

	"roomledger/internal/billing"
	"roomledger/internal/format"
	"roomledger/internal/room"
)

func sampleRooms() []room.Room {
	return []room.Room{
		{ID: 1, HolderName: "Asha", Rent: 5000, LightUnits: 15, Occupied: true},
		{ID: 2, HolderName: "", Rent: 3000, LightUnits: 0, Occupied: false},
		{ID: 3, HolderName: "Ravi, Jr.", Rent: 4500, LightUnits: 7, Occupied: true, Reminders: []string{"collect deposit", "fix fan"}},
	}
}

func TestASCII_RoomTable(t *testing.T) {
	out := format.RoomTable(sampleRooms(), format.ASCII)
	lower := strings.ToLower(out)
	for _, want := range []string{"room id", "holder name", "light units", "asha", "5000", "yes", "no"} {
		if !strings.Contains(lower, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_RoomTable(t *testing.T) {
	out := format.RoomTable(sampleRooms(), format.Markdown)
	if !strings.Contains(out, "| Room ID") {
		t.Errorf("expected markdown header with '| Room ID':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
}

func TestCSV_RoomTableQuotesCommas(t *testing.T) {
	out := format.RoomTable(sampleRooms(), format.CSV)
	if !strings.Contains(out, `"Ravi, Jr."`) {
		t.Errorf("expected quoted holder name in CSV:\n%s", out)
	}
	if strings.Contains(out, "───") || strings.Contains(out, "| ") {
		t.Errorf("CSV output should have no table decoration:\n%s", out)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 4 {
		t.Errorf("expected header + 3 rows, got %d lines:\n%s", len(lines), out)
	}
}

func TestRoomTable_RemindersColumn(t *testing.T) {
	out := format.RoomTable(sampleRooms(), format.Markdown)
	if !strings.Contains(out, "collect deposit; fix fan") {
		t.Errorf("expected joined reminders in table:\n%s", out)
	}
}

func TestRoomTable_TruncatesLongCellsExceptCSV(t *testing.T) {
	long := strings.Repeat("x", format.MaxCellWidth+10)
	rooms := []room.Room{{ID: 9, HolderName: long, Reminders: []string{long}}}

	md := format.RoomTable(rooms, format.Markdown)
	if strings.Contains(md, long) {
		t.Errorf("markdown table kept the full %d-rune cell:\n%s", len(long), md)
	}
	if !strings.Contains(md, format.Truncate(long, format.MaxCellWidth)) {
		t.Errorf("expected truncated cell in markdown table:\n%s", md)
	}

	csv := format.RoomTable(rooms, format.CSV)
	if strings.Count(csv, long) != 2 {
		t.Errorf("CSV should keep holder name and reminders whole:\n%s", csv)
	}
}

func TestBillTable_Footer(t *testing.T) {
	stmts := billing.Statements(sampleRooms(), 10)
	out := format.BillTable(stmts, "₹", format.Markdown)
	for _, want := range []string{"TOTAL", "₹5150", "₹12500", "₹220", "₹12720"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in bill table:\n%s", want, out)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want format.Mode
		bad  bool
	}{
		{"", format.ASCII, false},
		{"table", format.ASCII, false},
		{"Markdown", format.Markdown, false},
		{"md", format.Markdown, false},
		{"csv", format.CSV, false},
		{"xml", format.ASCII, true},
	}
	for _, tc := range tests {
		got, err := format.ParseMode(tc.in)
		if (err != nil) != tc.bad {
			t.Errorf("ParseMode(%q) err = %v, want error=%v", tc.in, err, tc.bad)
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSameData_AllModesDiffer(t *testing.T) {
	build := func(m format.Mode) string {
		tb := format.NewTable(m)
		tb.Header("A", "B")
		tb.Row("x", "y")
		return tb.String()
	}
	ascii, md, csv := build(format.ASCII), build(format.Markdown), build(format.CSV)
	if ascii == md || md == csv || ascii == csv {
		t.Error("ASCII, Markdown and CSV output should differ")
	}
	for _, out := range []string{ascii, md, csv} {
		if !strings.Contains(out, "x") || !strings.Contains(out, "y") {
			t.Errorf("expected data in output:\n%s", out)
		}
	}
}

func TestRentLines(t *testing.T) {
	got := format.RentLines(sampleRooms()[:2], "₹")
	want := "Room 1 (Asha): Rent = ₹5000 | Status = Occupied\nRoom 2 (): Rent = ₹3000 | Status = Vacant"
	if got != want {
		t.Errorf("RentLines =\n%s\nwant\n%s", got, want)
	}
	if got := format.RentLines(nil, "₹"); got != "No rooms available." {
		t.Errorf("RentLines(nil) = %q", got)
	}
}

func TestVacantLines(t *testing.T) {
	if got := format.VacantLines(sampleRooms()); got != "Room 2 is vacant." {
		t.Errorf("VacantLines = %q", got)
	}
	if got := format.VacantLines(sampleRooms()[:1]); got != "No vacant rooms available." {
		t.Errorf("VacantLines(all occupied) = %q", got)
	}
}

func TestBillLines(t *testing.T) {
	st := billing.For(room.Room{ID: 1, HolderName: "Asha", Rent: 1000, LightUnits: 12}, 10)
	if got := format.LightBillLine(st, "₹"); got != "Room 1 (Asha): Light Bill = ₹120" {
		t.Errorf("LightBillLine = %q", got)
	}
	got := format.TotalBillLines([]billing.Statement{st}, "₹")
	if got != "Room 1 (Asha): Total Bill = ₹1120 (Rent: ₹1000 + Light Bill: ₹120)" {
		t.Errorf("TotalBillLines = %q", got)
	}
	if got := format.TotalBillLines(nil, "₹"); got != "No rooms available." {
		t.Errorf("TotalBillLines(nil) = %q", got)
	}
}

func TestRoomDetail(t *testing.T) {
	out := format.RoomDetail(sampleRooms()[2], "₹", 10)
	for _, want := range []string{"Room:        3", "Total bill:  ₹4570", "Reminders:   (2)", "  1. collect deposit", "  2. fix fan"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in detail:\n%s", want, out)
		}
	}
	out = format.RoomDetail(sampleRooms()[1], "₹", 10)
	if !strings.Contains(out, "Holder:      -") || !strings.Contains(out, "Reminders:   none") {
		t.Errorf("unexpected detail for empty room:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"ab", 3, "ab"},
		{"abcdef", 3, "abc"},
		{"₹₹₹₹₹₹", 5, "₹₹..."},
	}
	for _, tc := range tests {
		got := format.Truncate(tc.in, tc.maxLen)
		if got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}

func TestReminders(t *testing.T) {
	if got := format.Reminders([]string{"a", "b"}); got != "a; b" {
		t.Errorf("Reminders = %q", got)
	}
}
