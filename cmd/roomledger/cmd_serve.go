package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	mcpserver "roomledger/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Long: `Starts an MCP server over stdin/stdout exposing the room ledger as tools
(list_rooms, get_room, add_room, update_room, add_reminder, delete_room,
room_bill, billing_summary).

The server monitors for parent process death and exits when the client
that launched it goes away.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := mcpserver.NewServer(a.store, mcpserver.Options{
				Version:  version,
				FlatRate: a.rate(),
			})
			return serve(cmd.Context(), a, func(ctx context.Context) error {
				return srv.Run(ctx, &sdkmcp.StdioTransport{})
			})
		},
	}
}

// serve runs the MCP server next to the parent watchdog; whichever finishes
// first stops the other.
func serve(ctx context.Context, a *app, run func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return run(ctx)
	})
	g.Go(func() error {
		err := mcpserver.WatchParent(ctx, mcpserver.DefaultWatchInterval)
		cancel()
		if errors.Is(err, mcpserver.ErrParentGone) {
			return nil
		}
		return err
	})

	a.log.Info("starting roomledger MCP server over stdio (parent watchdog active)", "store", a.store.Location())
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
