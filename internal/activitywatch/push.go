package activitywatch

import (
	"context"
	"errors"
)

// ErrConnectionClosed is reported when a push connection stops delivering
// notifications.
var ErrConnectionClosed = errors.New("push connection closed")

// NotificationKind tells which subscription produced a Notification.
type NotificationKind int

const (
	// NotificationAccount reports a state change of the subscribed account.
	NotificationAccount NotificationKind = iota + 1

	// NotificationLogs reports the logs of a transaction mentioning the
	// subscribed account.
	NotificationLogs
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationAccount:
		return "account"
	case NotificationLogs:
		return "logs"
	default:
		return "unknown"
	}
}

// Notification is a message received from the push channel.
type Notification struct {
	Kind      NotificationKind
	Address   string   // address of the subscription that produced it
	Signature string   // logs notifications only
	Logs      []string // logs notifications only
}

// PushChannel opens push connections.
type PushChannel interface {
	// Dial opens a new connection. The connection is not subscribed to
	// anything yet.
	Dial(ctx context.Context) (PushConn, error)
}

// PushConn is one multiplexed push connection.
type PushConn interface {
	// Subscribe starts account and log notifications for address.
	Subscribe(ctx context.Context, address string) error

	// Unsubscribe cancels the subscriptions of address.
	Unsubscribe(ctx context.Context, address string) error

	// Notifications returns the stream of notifications. The channel is
	// closed when the connection drops or is closed.
	Notifications() <-chan Notification

	// Close terminates the connection. It is safe to call more than once.
	Close() error
}
