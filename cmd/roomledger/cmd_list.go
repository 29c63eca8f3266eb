package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"roomledger/internal/filter"
	"roomledger/internal/format"
)

func newListCmd(a *app) *cobra.Command {
	var where, outFormat string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the room table",
		Long: `Show every room in stored order. --where takes a boolean expression over
room_id, holder_name, rent, light_units, occupied, vacant and reminders,
for example: --where 'vacant && rent < 5000'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := filter.Compile(where)
			if err != nil {
				return err
			}
			jsonOut := outFormat == "json"
			var mode format.Mode
			if !jsonOut {
				if mode, err = format.ParseMode(outFormat); err != nil {
					return err
				}
			}

			rooms, err := f.Apply(a.readRooms(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rooms)
			}
			if len(rooms) == 0 && mode != format.CSV {
				fmt.Fprintln(out, "No rooms available.")
				return nil
			}
			fmt.Fprintln(out, format.RoomTable(rooms, mode))
			return nil
		},
	}
	cmd.Flags().StringVar(&where, "where", "", "Filter expression")
	cmd.Flags().StringVar(&outFormat, "format", "ascii", "Output format: ascii, markdown, csv or json")
	return cmd
}
