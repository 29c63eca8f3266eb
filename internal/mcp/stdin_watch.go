package mcp

import (
	"context"
	"errors"
	"os"
	"time"

	"roomledger/internal/logging"
)

// ErrParentGone is returned by WatchParent when the launching process exits.
var ErrParentGone = errors.New("parent process exited")

// DefaultWatchInterval is how often WatchParent polls the parent pid.
var DefaultWatchInterval = 2 * time.Second

// WatchParent blocks until ctx is canceled (returning nil) or the parent
// process changes (returning ErrParentGone), so the server does not outlive
// the assistant that spawned it.
//
// It must NOT read from stdin: the SDK's StdioTransport owns stdin, and
// stealing bytes would corrupt the JSON-RPC stream.
func WatchParent(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	ppid := os.Getppid()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if os.Getppid() != ppid {
				logging.New("mcp").Warn("parent process died, shutting down", "was_pid", ppid)
				return ErrParentGone
			}
		}
	}
}
