package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/gabapcia/solwatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// startWatchingWalletCommand returns a CLI command that registers a wallet
// address for activity monitoring. Registering an address twice is reported
// but is not an error.
//
// Usage example:
//
//	solwatch watch --address 9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM --label treasury
func startWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a wallet to be monitored for transaction activity.",
		Usage:       "Registers a wallet address for watching.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start watching",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "label",
				Usage: "Optional human readable name of the wallet",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				address = c.String("address")
				label   = c.String("label")
				out     = c.Root().Writer
			)

			err := wr.StartWatching(ctx, address, label)
			switch {
			case errors.Is(err, walletregistry.ErrWalletAlreadyRegistered):
				fmt.Fprintf(out, "%s is already watched\n", address)
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintf(out, "watching %s\n", address)
			return nil
		},
	}
}

// stopWatchingWalletCommand returns a CLI command that unregisters a wallet
// address from monitoring.
//
// Usage example:
//
//	solwatch unwatch --address 9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM
func stopWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister a wallet from being monitored.",
		Usage:       "Stops watching a wallet address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to stop watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address := c.String("address")

			if err := wr.StopWatching(ctx, address); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "stopped watching %s\n", address)
			return nil
		},
	}
}

// listWatchedWalletsCommand returns a CLI command that prints the registered
// wallets, as a table or as JSON.
//
// Usage example:
//
//	solwatch list --json
func listWatchedWalletsCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the wallets currently registered for monitoring.",
		Usage:       "Prints the watched wallets ordered by registration time.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the wallets as a JSON array",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wallets, err := wr.ListWatching(ctx)
			if err != nil {
				return err
			}

			out := c.Root().Writer
			if c.Bool("json") {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(wallets)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ADDRESS\tLABEL\tADDED AT")
			for _, w := range wallets {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", w.Address, w.Label, w.AddedAt.Format(time.RFC3339))
			}

			return tw.Flush()
		},
	}
}
