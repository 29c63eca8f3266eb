package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Remove a room permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeleteRoom(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Room %d deleted.\n", id)
			return nil
		},
	}
}
