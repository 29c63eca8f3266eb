// roomledger tracks rented rooms: holders, rent, electricity usage and
// reminders, with billing at a flat per-unit rate.
//
// Usage:
//
//	roomledger list [--where EXPR] [--format ascii|markdown|csv|json]
//	roomledger add --id N --name NAME --rent AMOUNT [--vacant]
//	roomledger update N [--name NAME] [--rent AMOUNT] [--light-units U] [--occupied|--vacant]
//	roomledger remind N TEXT...
//	roomledger bill [N]
//	roomledger serve
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, closeStore := newRootCmd()
	err := root.ExecuteContext(ctx)
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
