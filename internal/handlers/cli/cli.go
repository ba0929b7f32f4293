package cli

import (
	"context"
	"os"

	"github.com/gabapcia/solwatch/internal/activitywatch"
	"github.com/gabapcia/solwatch/internal/txclassify"
	"github.com/gabapcia/solwatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the solwatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Starts watching every registered wallet.
//   - `watch`: Registers a wallet for monitoring.
//   - `unwatch`: Unregisters a wallet from monitoring.
//   - `list`: Lists the registered wallets.
//   - `classify`: Classifies a single transaction.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - wr: The walletregistry service used by wallet commands.
//   - aw: The activitywatch service used by the start command.
//   - chain: The chain source used to fetch transactions to classify.
//   - classifier: The classifier used by the classify command.
func Run(ctx context.Context, wr walletregistry.Service, aw activitywatch.Service, chain activitywatch.ChainSource, classifier txclassify.Classifier) error {
	return newApp(wr, aw, chain, classifier).Run(ctx, os.Args)
}

func newApp(wr walletregistry.Service, aw activitywatch.Service, chain activitywatch.ChainSource, classifier txclassify.Classifier) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "solwatch",
		Description:           "Command-line interface for watching Solana wallets and reporting their activity.",
		Usage:                 "solwatch [command] [flags]",
		Commands: []*cli.Command{
			startWatcherCommand(aw),
			startWatchingWalletCommand(wr),
			stopWatchingWalletCommand(wr),
			listWatchedWalletsCommand(wr),
			classifyTransactionCommand(wr, chain, classifier),
		},
	}
}
