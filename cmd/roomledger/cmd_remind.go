package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRemindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remind ID TEXT...",
		Short: "Attach a reminder to a room",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return errors.New("reminder text must not be empty")
			}
			r, err := a.store.AppendReminder(id, text)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reminder set for Room %d (%d total).\n", id, len(r.Reminders))
			return nil
		},
	}
}
