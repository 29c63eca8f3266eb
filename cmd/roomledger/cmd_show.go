package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomledger/internal/format"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one room with its reminders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			r, err := findRoom(a.readRooms(cmd), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), format.RoomDetail(r, a.currency(), a.rate()))
			return nil
		},
	}
}
