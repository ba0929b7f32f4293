package activitywatch

import (
	"context"
	"strings"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/types"
	"github.com/gabapcia/solwatch/internal/pkg/x/chflow"
)

// runPush drives the push channel state machine until ctx is done or the
// reconnect budget is exhausted. The retry counter is reset every time a
// connection reaches SUBSCRIBED. A canceled ctx leaves the state at
// DISCONNECTED.
func (s *service) runPush(ctx context.Context) {
	retries := 0

	for {
		s.setState(StateConnecting)

		err := s.serveConn(ctx, &retries)
		if ctx.Err() != nil {
			s.setState(StateDisconnected)
			return
		}

		logger.Warn(ctx, "push channel lost",
			"push.retries", retries,
			"error", err,
		)

		if retries >= s.maxReconnectAttempts {
			s.setState(StateDegraded)
			logger.Warn(ctx, "push channel reconnect budget exhausted, continuing with polling only",
				"push.max_retries", s.maxReconnectAttempts,
			)
			return
		}

		retries++
		s.metrics.reconnects.Add(ctx, 1)

		if ok := chflow.Sleep(ctx, s.reconnectDelay); !ok {
			s.setState(StateDisconnected)
			return
		}
	}
}

// serveConn dials, subscribes every watched address and dispatches
// notifications until the connection drops. It always returns a non-nil
// error describing why the connection ended.
func (s *service) serveConn(ctx context.Context, retries *int) error {
	conn, err := s.push.Dial(ctx)
	if err != nil {
		return err
	}
	defer s.detach(conn)

	if err := s.attach(ctx, conn); err != nil {
		return err
	}

	*retries = 0
	logger.Info(ctx, "push channel subscribed")

	notifications := conn.Notifications()
	for {
		n, ok := chflow.Receive(ctx, notifications)
		if !ok {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return ErrConnectionClosed
		}

		s.dispatch(ctx, n)
	}
}

// attach installs conn as the live connection and subscribes every watched
// address. Registry changes that race with attach are applied either by the
// snapshot taken here or by the observer callbacks once the lock is released.
func (s *service) attach(ctx context.Context, conn PushConn) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	s.conn = conn
	s.subscribed = types.NewSet[string]()

	for _, address := range s.registry.Snapshot() {
		if err := conn.Subscribe(ctx, address); err != nil {
			return err
		}
		s.subscribed.Add(address)
	}

	s.setState(StateSubscribed)
	return nil
}

// detach forgets conn and closes it.
func (s *service) detach(conn PushConn) {
	s.connMu.Lock()
	if s.conn == conn {
		s.conn = nil
		s.subscribed = types.NewSet[string]()
	}
	s.connMu.Unlock()

	_ = conn.Close()
}

// closeConn closes the live connection, if any, without waiting for the push
// loop to notice.
func (s *service) closeConn() {
	s.connMu.Lock()
	conn := s.conn
	s.connMu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// dispatch routes a notification to the worker queue without blocking.
// Account changes poll the address. Log notifications are processed by
// signature when a watched address appears in the log lines, and fall back to
// polling the subscribed address otherwise. When the queue is full the
// notification is dropped and the next poll tick covers it.
func (s *service) dispatch(ctx context.Context, n Notification) {
	t := task{address: n.Address}

	if n.Kind == NotificationLogs && n.Signature != "" && s.logsMentionWatched(n.Logs) {
		t = task{signature: n.Signature}
	}

	if t.address == "" && t.signature == "" {
		return
	}

	select {
	case s.queue <- t:
	default:
		s.metrics.dropped.Add(ctx, 1)
		logger.Debug(ctx, "push queue full, leaving notification to the next poll",
			"wallet.address", n.Address,
			"tx.signature", n.Signature,
		)
	}
}

// logsMentionWatched reports whether any watched address appears verbatim in
// the log lines.
func (s *service) logsMentionWatched(logs []string) bool {
	watched := s.registry.Snapshot()
	for _, line := range logs {
		for _, address := range watched {
			if strings.Contains(line, address) {
				return true
			}
		}
	}

	return false
}

// runWorker serves queued push tasks until ctx is done.
func (s *service) runWorker(ctx context.Context) {
	for {
		t, ok := chflow.Receive(ctx, s.queue)
		if !ok {
			return
		}

		if t.signature != "" {
			s.metrics.discovered.Add(ctx, 1)
			s.processSignature(ctx, t.signature)
			continue
		}

		s.pollAddressAndLog(ctx, t.address)
	}
}

// reconcileSubscriptions brings the live subscriptions in line with
// addresses. It does nothing while no connection is subscribed.
func (s *service) reconcileSubscriptions(ctx context.Context, addresses []string) {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn == nil || s.State() != StateSubscribed {
		return
	}

	want := types.NewSet(addresses...)

	for address := range want.Difference(s.subscribed).ToIter() {
		s.subscribeLocked(ctx, address)
	}

	for address := range s.subscribed.Difference(want).ToIter() {
		s.unsubscribeLocked(ctx, address)
	}
}

func (s *service) subscribeLocked(ctx context.Context, address string) {
	if err := s.conn.Subscribe(ctx, address); err != nil {
		logger.Warn(ctx, "error subscribing wallet",
			"wallet.address", address,
			"error", err,
		)
		return
	}
	s.subscribed.Add(address)
}

func (s *service) unsubscribeLocked(ctx context.Context, address string) {
	if err := s.conn.Unsubscribe(ctx, address); err != nil {
		logger.Warn(ctx, "error unsubscribing wallet",
			"wallet.address", address,
			"error", err,
		)
	}
	s.subscribed.Delete(address)
}

// WalletAdded subscribes address right away when the push channel is
// subscribed. Otherwise the next successful subscribe picks it up.
func (s *service) WalletAdded(ctx context.Context, address string) {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn == nil || s.subscribed.Has(address) {
		return
	}
	s.subscribeLocked(ctx, address)
}

// WalletRemoved cancels the subscription of address when there is one.
func (s *service) WalletRemoved(ctx context.Context, address string) {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn == nil || !s.subscribed.Has(address) {
		return
	}
	s.unsubscribeLocked(ctx, address)
}
