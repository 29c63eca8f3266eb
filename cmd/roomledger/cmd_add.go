package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomledger/internal/display"
	"roomledger/internal/room"
)

func newAddCmd(a *app) *cobra.Command {
	var flags struct {
		id         int
		name       string
		rent       int
		lightUnits int
		vacant     bool
		status     string
	}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new room",
		Long:  "Add a new room. Rooms are occupied unless --vacant is given; the id must not be in use.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkNonNegative("rent", flags.rent); err != nil {
				return err
			}
			if err := checkNonNegative("light-units", flags.lightUnits); err != nil {
				return err
			}
			occupied := !flags.vacant
			if cmd.Flags().Changed("status") {
				v, err := display.ParseStatus(flags.status)
				if err != nil {
					return err
				}
				occupied = v
			}
			r := room.Room{
				ID:         flags.id,
				HolderName: flags.name,
				Rent:       flags.rent,
				LightUnits: flags.lightUnits,
				Occupied:   occupied,
				Reminders:  []string{},
			}
			if err := a.store.AddRoom(r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Room %d added successfully.\n", r.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&flags.id, "id", 0, "Room id (required)")
	f.StringVar(&flags.name, "name", "", "Holder name")
	f.IntVar(&flags.rent, "rent", 0, "Monthly rent (required)")
	f.IntVar(&flags.lightUnits, "light-units", 0, "Electricity units already used")
	f.BoolVar(&flags.vacant, "vacant", false, "Add the room as vacant")
	f.StringVar(&flags.status, "status", "", "Initial status: occupied or vacant")

	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("rent")
	cmd.MarkFlagsMutuallyExclusive("vacant", "status")
	return cmd
}
