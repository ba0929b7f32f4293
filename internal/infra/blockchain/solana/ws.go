package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gabapcia/solwatch/internal/activitywatch"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/transport/jsonrpc"
)

const (
	defaultPingInterval   = 30 * time.Second
	defaultReadTimeout    = 60 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultRequestTimeout = 30 * time.Second
	defaultHandshake      = 10 * time.Second

	notificationBuffer = 256
)

type (
	wsRequest struct {
		JSONRPC string `json:"jsonrpc"`
		ID      uint64 `json:"id"`
		Method  string `json:"method"`
		Params  []any  `json:"params"`
	}

	wsError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	// wsMessage is either the reply to a request or a subscription
	// notification.
	wsMessage struct {
		ID     *uint64         `json:"id"`
		Result json.RawMessage `json:"result"`
		Error  *wsError        `json:"error"`
		Method string          `json:"method"`
		Params *struct {
			Subscription int64           `json:"subscription"`
			Result       json.RawMessage `json:"result"`
		} `json:"params"`
	}

	// LogsNotificationResponse is the payload of a logsNotification.
	LogsNotificationResponse struct {
		Context struct {
			Slot uint64 `json:"slot"`
		} `json:"context"`
		Value struct {
			Signature string   `json:"signature"`
			Err       any      `json:"err"`
			Logs      []string `json:"logs"`
		} `json:"value"`
	}

	wsReply struct {
		result json.RawMessage
		err    error
	}

	subscription struct {
		address string
		kind    activitywatch.NotificationKind
	}
)

// pushChannel dials Solana WebSocket endpoints.
type pushChannel struct {
	endpoint       string
	dialer         *websocket.Dialer
	pingInterval   time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	requestTimeout time.Duration
}

var _ activitywatch.PushChannel = (*pushChannel)(nil)

// WSOption configures a push channel.
type WSOption func(*pushChannel)

// WithPingInterval sets how often a ping frame is sent on an idle connection.
func WithPingInterval(d time.Duration) WSOption {
	return func(p *pushChannel) {
		p.pingInterval = d
	}
}

// WithReadTimeout sets how long the connection may stay silent, pongs
// included, before it is considered lost.
func WithReadTimeout(d time.Duration) WSOption {
	return func(p *pushChannel) {
		p.readTimeout = d
	}
}

// WithRequestTimeout bounds how long a subscribe or unsubscribe call waits
// for its reply.
func WithRequestTimeout(d time.Duration) WSOption {
	return func(p *pushChannel) {
		p.requestTimeout = d
	}
}

// NewPushChannel returns a push channel for the WebSocket endpoint of a
// Solana node.
func NewPushChannel(endpoint string, opts ...WSOption) *pushChannel {
	p := &pushChannel{
		endpoint:       endpoint,
		dialer:         &websocket.Dialer{HandshakeTimeout: defaultHandshake},
		pingInterval:   defaultPingInterval,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Dial opens a new connection and starts reading from it.
func (p *pushChannel) Dial(ctx context.Context) (activitywatch.PushConn, error) {
	ws, _, err := p.dialer.DialContext(ctx, p.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial: %w", err)
	}

	c := &pushConn{
		ws:             ws,
		writeTimeout:   p.writeTimeout,
		readTimeout:    p.readTimeout,
		requestTimeout: p.requestTimeout,
		pending:        make(map[uint64]chan wsReply),
		subs:           make(map[int64]subscription),
		byAddress:      make(map[string][]int64),
		notifications:  make(chan activitywatch.Notification, notificationBuffer),
		done:           make(chan struct{}),
	}

	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(c.readTimeout))
	})

	go c.readLoop()
	if p.pingInterval > 0 {
		go c.pingLoop(p.pingInterval)
	}

	return c, nil
}

// pushConn multiplexes account and logs subscriptions over one WebSocket.
type pushConn struct {
	ws             *websocket.Conn
	writeMu        sync.Mutex
	writeTimeout   time.Duration
	readTimeout    time.Duration
	requestTimeout time.Duration
	requestID      atomic.Uint64

	mu        sync.Mutex
	pending   map[uint64]chan wsReply
	subs      map[int64]subscription
	byAddress map[string][]int64

	notifications chan activitywatch.Notification
	done          chan struct{}
	closeOnce     sync.Once
}

var _ activitywatch.PushConn = (*pushConn)(nil)

func (c *pushConn) write(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return err
	}
	return c.ws.WriteJSON(v)
}

// call sends a request and waits for its reply.
func (c *pushConn) call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	id := c.requestID.Add(1)
	replyCh := make(chan wsReply, 1)

	c.mu.Lock()
	c.pending[id] = replyCh
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	err := c.write(wsRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", method, err)
	}

	timer := time.NewTimer(c.requestTimeout)
	defer timer.Stop()

	select {
	case reply := <-replyCh:
		return reply.result, reply.err
	case <-timer.C:
		return nil, fmt.Errorf("%s: no reply after %s", method, c.requestTimeout)
	case <-c.done:
		return nil, activitywatch.ErrConnectionClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *pushConn) subscribe(ctx context.Context, address string, kind activitywatch.NotificationKind, method string, params ...any) error {
	result, err := c.call(ctx, method, params...)
	if err != nil {
		return err
	}

	var id int64
	if err := json.Unmarshal(result, &id); err != nil {
		return fmt.Errorf("decoding %s reply: %w", method, err)
	}

	c.mu.Lock()
	c.subs[id] = subscription{address: address, kind: kind}
	c.byAddress[address] = append(c.byAddress[address], id)
	c.mu.Unlock()

	return nil
}

// Subscribe opens an account subscription and a logs subscription filtered
// by mentions of address. Subscribing an address twice is a no-op.
func (c *pushConn) Subscribe(ctx context.Context, address string) error {
	c.mu.Lock()
	_, ok := c.byAddress[address]
	c.mu.Unlock()
	if ok {
		return nil
	}

	err := c.subscribe(ctx, address, activitywatch.NotificationAccount, "accountSubscribe",
		address,
		map[string]any{"encoding": "base64", "commitment": commitment},
	)
	if err != nil {
		return err
	}

	return c.subscribe(ctx, address, activitywatch.NotificationLogs, "logsSubscribe",
		map[string]any{"mentions": []string{address}},
		map[string]any{"commitment": commitment},
	)
}

// Unsubscribe cancels every subscription opened for address.
func (c *pushConn) Unsubscribe(ctx context.Context, address string) error {
	c.mu.Lock()
	ids := c.byAddress[address]
	delete(c.byAddress, address)

	subs := make([]subscription, len(ids))
	for i, id := range ids {
		subs[i] = c.subs[id]
		delete(c.subs, id)
	}
	c.mu.Unlock()

	var errs []error
	for i, id := range ids {
		method := "accountUnsubscribe"
		if subs[i].kind == activitywatch.NotificationLogs {
			method = "logsUnsubscribe"
		}

		if _, err := c.call(ctx, method, id); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Notifications returns the notification stream. It is closed once the
// connection is gone.
func (c *pushConn) Notifications() <-chan activitywatch.Notification {
	return c.notifications
}

// Close sends a close frame and tears the connection down.
func (c *pushConn) Close() error {
	select {
	case <-c.done:
		return nil
	default:
	}

	c.writeMu.Lock()
	_ = c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(c.writeTimeout),
	)
	c.writeMu.Unlock()

	c.terminate()
	return nil
}

func (c *pushConn) terminate() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.ws.Close()
	})
}

func (c *pushConn) pingLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeTimeout))
			c.writeMu.Unlock()

			if err != nil {
				c.terminate()
				return
			}
		}
	}
}

// readLoop is the only writer and the only closer of the notifications
// channel.
func (c *pushConn) readLoop() {
	defer close(c.notifications)
	defer c.terminate()

	ctx := context.Background()
	for {
		if err := c.ws.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return
		}

		_, data, err := c.ws.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			default:
				logger.Debug(ctx, "push connection read failed", "error", err)
			}
			return
		}

		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warn(ctx, "discarding undecodable push message", "error", err)
			continue
		}

		if msg.ID != nil {
			c.reply(*msg.ID, msg)
			continue
		}

		n, ok := c.notification(msg)
		if !ok {
			continue
		}

		select {
		case c.notifications <- n:
		case <-c.done:
			return
		}
	}
}

func (c *pushConn) reply(id uint64, msg wsMessage) {
	c.mu.Lock()
	replyCh, ok := c.pending[id]
	c.mu.Unlock()
	if !ok {
		return
	}

	reply := wsReply{result: msg.Result}
	if msg.Error != nil {
		reply.err = fmt.Errorf("%w: [%d] - %s", jsonrpc.ErrProviderReturnedError, msg.Error.Code, msg.Error.Message)
	}

	replyCh <- reply
}

// notification maps a subscription message to a Notification. Messages for
// unknown subscriptions are dropped.
func (c *pushConn) notification(msg wsMessage) (activitywatch.Notification, bool) {
	if msg.Params == nil {
		return activitywatch.Notification{}, false
	}

	c.mu.Lock()
	sub, ok := c.subs[msg.Params.Subscription]
	c.mu.Unlock()
	if !ok {
		return activitywatch.Notification{}, false
	}

	n := activitywatch.Notification{Kind: sub.kind, Address: sub.address}
	if sub.kind != activitywatch.NotificationLogs {
		return n, true
	}

	var logs LogsNotificationResponse
	if err := json.Unmarshal(msg.Params.Result, &logs); err != nil {
		logger.Warn(context.Background(), "discarding undecodable logs notification", "error", err)
		return n, true
	}

	n.Signature = logs.Value.Signature
	n.Logs = logs.Value.Logs
	return n, true
}
