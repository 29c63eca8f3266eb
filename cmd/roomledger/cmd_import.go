package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roomledger/internal/store"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Copy rooms from a JSON room file into the configured store",
		Long: `Read a JSON room file (an array of room objects, as written by the json
backend) and add every room to the configured store. Nothing is added if
any id is already in use or repeated in the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			rooms, err := store.NewFileBackend(path).Load()
			if err != nil {
				return err
			}
			if err := a.store.AddRooms(rooms); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rooms from %s into %s\n", len(rooms), path, a.store.Location())
			return nil
		},
	}
}
