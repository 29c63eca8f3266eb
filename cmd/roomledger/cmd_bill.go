package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomledger/internal/billing"
	"roomledger/internal/format"
)

func newBillCmd(a *app) *cobra.Command {
	var outFormat string
	var lines bool
	cmd := &cobra.Command{
		Use:   "bill [ID]",
		Short: "Show light bills and total bills",
		Long: `With a room id, show that room's light bill. Without one, show the total
bill (rent plus light bill) of every room and the grand total.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := format.ParseMode(outFormat)
			if err != nil {
				return err
			}
			var id int
			if len(args) == 1 {
				if id, err = parseRoomID(args[0]); err != nil {
					return err
				}
			}

			rooms := a.readRooms(cmd)
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				r, err := findRoom(rooms, id)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, format.LightBillLine(billing.For(r, a.rate()), a.currency()))
				return nil
			}

			stmts := billing.Statements(rooms, a.rate())
			switch {
			case lines:
				fmt.Fprintln(out, format.TotalBillLines(stmts, a.currency()))
			case len(stmts) == 0 && mode != format.CSV:
				fmt.Fprintln(out, "No rooms available.")
			default:
				fmt.Fprintln(out, format.BillTable(stmts, a.currency(), mode))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outFormat, "format", "ascii", "Table format: ascii, markdown or csv")
	cmd.Flags().BoolVar(&lines, "lines", false, "One sentence per room instead of a table")
	return cmd
}
