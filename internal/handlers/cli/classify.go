package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/solwatch/internal/activitywatch"
	"github.com/gabapcia/solwatch/internal/txclassify"
	"github.com/gabapcia/solwatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// classifyTransactionCommand returns a CLI command that fetches one
// transaction and prints the events it produces. Without --address the
// transaction is classified against every watched wallet it mentions.
//
// Usage example:
//
//	solwatch classify --signature 5h6x... --address 9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM
func classifyTransactionCommand(wr walletregistry.Service, chain activitywatch.ChainSource, classifier txclassify.Classifier) *cli.Command {
	return &cli.Command{
		Name:        "classify",
		Description: "Fetch a confirmed transaction and print the activity it represents.",
		Usage:       "Classifies a transaction for the given addresses or for the watched wallets.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "signature",
				Usage:    "Transaction signature to classify",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "address",
				Usage: "Address to classify the transaction for (repeatable)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			signature := c.String("signature")

			tx, err := chain.GetTransaction(ctx, signature)
			if err != nil {
				return fmt.Errorf("fetching transaction %s: %w", signature, err)
			}

			addresses := c.StringSlice("address")
			if len(addresses) == 0 {
				wallets, err := wr.ListWatching(ctx)
				if err != nil {
					return err
				}

				for _, w := range wallets {
					if tx.Mentions(w.Address) {
						addresses = append(addresses, w.Address)
					}
				}
			}

			out := c.Root().Writer
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			reported := 0
			for _, address := range addresses {
				event, ok := classifier.Classify(ctx, tx, address)
				if !ok {
					continue
				}

				if err := enc.Encode(event); err != nil {
					return err
				}
				reported++
			}

			if reported == 0 {
				fmt.Fprintf(out, "no reportable activity in %s\n", signature)
			}

			return nil
		},
	}
}
