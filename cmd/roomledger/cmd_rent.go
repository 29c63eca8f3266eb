package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomledger/internal/format"
)

func newRentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rent",
		Short: "Show rent and occupancy of every room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), format.RentLines(a.readRooms(cmd), a.currency()))
			return nil
		},
	}
}

func newVacantCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "vacant",
		Aliases: []string{"available"},
		Short:   "List vacant rooms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), format.VacantLines(a.readRooms(cmd)))
			return nil
		},
	}
}
