// Package export writes the room table to a spreadsheet.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"roomledger/internal/billing"
	"roomledger/internal/display"
	"roomledger/internal/room"
)

// SheetName is the single sheet written by WriteRooms.
const SheetName = "Rooms"

// Header is the column order of the exported sheet.
var Header = []string{
	"Room ID",
	"Holder Name",
	"Rent",
	"Light Units",
	"Occupied",
	"Light Bill",
	"Total Bill",
	"Reminders",
}

var columnWidths = []float64{10, 28, 12, 12, 10, 12, 12, 48}

// WriteRooms writes rooms as an .xlsx workbook to w. Money columns hold
// plain numbers so the sheet can total them.
func WriteRooms(w io.Writer, rooms []room.Room, rate int) error {
	f, err := build(rooms, rate)
	if err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		_ = f.Close()
		return fmt.Errorf("write workbook: %w", err)
	}
	return f.Close()
}

// SaveRooms writes the workbook to path, creating its directory.
func SaveRooms(path string, rooms []room.Room, rate int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	f, err := build(rooms, rate)
	if err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		_ = f.Close()
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return f.Close()
}

func build(rooms []room.Room, rate int) (*excelize.File, error) {
	f := excelize.NewFile()
	fail := func(err error) (*excelize.File, error) {
		_ = f.Close()
		return nil, err
	}

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fail(fmt.Errorf("create sheet: %w", err))
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fail(fmt.Errorf("drop default sheet: %w", err))
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fail(fmt.Errorf("create header style: %w", err))
	}

	for i, h := range Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fail(err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fail(fmt.Errorf("set header %s: %w", cell, err))
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fail(fmt.Errorf("style header %s: %w", cell, err))
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fail(err)
		}
		if err := f.SetColWidth(SheetName, col, col, columnWidths[i]); err != nil {
			return fail(fmt.Errorf("set width %s: %w", col, err))
		}
	}

	for i, r := range rooms {
		st := billing.For(r, rate)
		row := []any{
			r.ID,
			r.HolderName,
			r.Rent,
			r.LightUnits,
			display.YesNo(r.Occupied),
			st.LightBill,
			st.Total,
			strings.Join(r.Reminders, "\n"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fail(err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fail(fmt.Errorf("write room %d: %w", r.ID, err))
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fail(fmt.Errorf("freeze header: %w", err))
	}
	return f, nil
}
