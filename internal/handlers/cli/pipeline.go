package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/solwatch/internal/activitywatch"
	"github.com/gabapcia/solwatch/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// startWatcherCommand returns a CLI command that starts watching every
// registered wallet, over the push channel when one is configured and by
// polling in any case.
//
// Usage example:
//
//	solwatch start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or
// ctx is cancelled.
func startWatcherCommand(aw activitywatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts watching the registered wallets and emitting their activity.",
		Usage:       "Runs the activity watcher. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := aw.Start(ctx); err != nil {
				return err
			}
			defer aw.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}

			logger.Info(ctx, "shutting down activity watcher", "push.state", aw.State().String())
			return nil
		},
	}
}
