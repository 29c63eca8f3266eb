package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomledger/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all rooms and bills to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rooms := a.readRooms(cmd)
			if err := export.SaveRooms(out, rooms, a.rate()); err != nil {
				return err
			}
			a.log.Info("rooms exported", "path", out, "rooms", len(rooms))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rooms to %s\n", len(rooms), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "rooms.xlsx", "Output .xlsx path")
	return cmd
}
