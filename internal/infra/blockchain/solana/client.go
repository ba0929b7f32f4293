// Package solana reads signatures, transactions and token supplies from a
// Solana node over JSON-RPC and exposes the node's WebSocket subscriptions as
// an activitywatch push channel.
package solana

import (
	"github.com/gabapcia/solwatch/internal/activitywatch"
	"github.com/gabapcia/solwatch/internal/pkg/transport/jsonrpc"
)

// commitment is the confirmation level requested on every call.
const commitment = activitywatch.ConfirmationConfirmed

// client implements activitywatch.ChainSource on top of a JSON-RPC client.
type client struct {
	conn jsonrpc.Client
}

var _ activitywatch.ChainSource = (*client)(nil)

// NewClient creates a Solana client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
