package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"roomledger/internal/display"
	"roomledger/internal/format"
	"roomledger/internal/room"
)

func newUpdateCmd(a *app) *cobra.Command {
	var flags struct {
		name       string
		rent       int
		lightUnits int
		occupied   bool
		vacant     bool
		status     string
	}
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update room information",
		Long:  "Change the holder name, rent, light units or occupancy of a room. Fields without a flag keep their value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			f := cmd.Flags()
			var p room.Patch
			if f.Changed("name") {
				p.HolderName = &flags.name
			}
			if f.Changed("rent") {
				if err := checkNonNegative("rent", flags.rent); err != nil {
					return err
				}
				p.Rent = &flags.rent
			}
			if f.Changed("light-units") {
				if err := checkNonNegative("light-units", flags.lightUnits); err != nil {
					return err
				}
				p.LightUnits = &flags.lightUnits
			}
			switch {
			case f.Changed("occupied"):
				p.Occupied = &flags.occupied
			case f.Changed("vacant"):
				occupied := !flags.vacant
				p.Occupied = &occupied
			case f.Changed("status"):
				occupied, err := display.ParseStatus(flags.status)
				if err != nil {
					return err
				}
				p.Occupied = &occupied
			}
			if p.Empty() {
				return errors.New("nothing to update: pass --name, --rent, --light-units, --occupied, --vacant or --status")
			}

			r, err := a.store.UpdateRoom(id, p)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Room %d updated successfully.\n", id)
			fmt.Fprint(out, format.RoomDetail(r, a.currency(), a.rate()))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.name, "name", "", "New holder name")
	f.IntVar(&flags.rent, "rent", 0, "New rent")
	f.IntVar(&flags.lightUnits, "light-units", 0, "New electricity units")
	f.BoolVar(&flags.occupied, "occupied", false, "Mark the room occupied")
	f.BoolVar(&flags.vacant, "vacant", false, "Mark the room vacant")
	f.StringVar(&flags.status, "status", "", "New status: occupied or vacant")
	cmd.MarkFlagsMutuallyExclusive("occupied", "vacant", "status")
	return cmd
}
