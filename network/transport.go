package network

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait        = 1 * time.Second
	maxMessageSize   = 8192
	pingResolution   = 200 * time.Millisecond
	pongWait         = pingResolution * 4
	readDeadline     = time.Second
	writeDeadline    = time.Second
	closeGracePeriod = 10 * time.Second
)

var upgrader = websocket.Upgrader{}

// ErrPongDeadlineExceeded signals that a client stopped answering pings
// and should be treated as disconnected.
var ErrPongDeadlineExceeded = errors.New("client disconnect, pong deadline exceeded")

// ErrSockCongestion indicates too many waiters on one socket operation.
var ErrSockCongestion = errors.New("sock op failed due to congestion")

// Client manages one connected simulation client: an inbound read pump
// that decodes client frames onto a shared Inbox channel, a liveness
// ping/pong loop, and an outbound publish pump that writes whatever
// this client's per-connection mailbox produces. Bidirectional, since
// the simulation core needs RegisterInterest messages from the client,
// not just a one-way broadcast.
type Client struct {
	addr     string
	outbound <-chan OutgoingMessage
	inbox    chan<- IncomingMessage
	ws       *websock
}

// NewClient upgrades an HTTP request to a WebSocket and returns a
// Client that will publish from outbound and forward decoded frames to
// inbox once Sync is called.
func NewClient(addr string, outbound <-chan OutgoingMessage, inbox chan<- IncomingMessage, w http.ResponseWriter, r *http.Request) (*Client, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, &TransportError{Addr: addr, Err: err}
	}
	conn.SetReadLimit(maxMessageSize)
	return &Client{
		addr:     addr,
		outbound: outbound,
		inbox:    inbox,
		ws:       newWebsock(conn),
	}, nil
}

// Sync runs the client's read, ping, and publish loops until one of
// them reports a fatal error or the context is cancelled. It returns
// nil on a clean disconnect.
func (c *Client) Sync(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error { return c.readMessages(groupCtx) })
	group.Go(func() error { return c.pingPong(groupCtx) })
	group.Go(func() error { return c.publish(groupCtx) })

	return group.Wait()
}

func (c *Client) readMessages(ctx context.Context) error {
	for {
		var payload []byte
		err := c.ws.Read(ctx, func(conn *websocket.Conn) (readErr error) {
			_, payload, readErr = conn.ReadMessage()
			return
		})
		if err != nil {
			return &TransportError{Addr: c.addr, Err: err}
		}
		if payload == nil {
			continue
		}
		msg, decodeErr := DecodeIncoming(c.addr, payload)
		if decodeErr != nil {
			log.Printf("dropping malformed frame from %s: %v", c.addr, decodeErr)
			continue
		}
		select {
		case c.inbox <- msg:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Client) pingPong(ctx context.Context) error {
	pong := make(chan struct{})
	defer close(pong)
	c.ws.Conn().SetPongHandler(func(_ string) error {
		pong <- struct{}{}
		return nil
	})

	pinger := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pinger:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := c.ping(ctx); err != nil {
				return &TransportError{Addr: c.addr, Err: err}
			}
		case <-pong:
			lastPong = time.Now()
		}
	}
}

func (c *Client) ping(ctx context.Context) error {
	return c.ws.Write(ctx, func(conn *websocket.Conn) error {
		return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
	})
}

// publish writes every message handed to this client's outbound
// mailbox. Spec §4.9 calls for exactly one frame per tick per client,
// so nothing here throttles or coalesces; congestion control happens
// upstream, where the orchestrator drops to a full mailbox instead of
// blocking (spec §4.9, §5).
func (c *Client) publish(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-c.outbound:
			if !ok {
				return nil
			}
			payload, err := EncodeOutgoing(msg)
			if err != nil {
				log.Printf("dropping unencodable frame for %s: %v", c.addr, err)
				continue
			}
			err = c.ws.Write(ctx, func(conn *websocket.Conn) error {
				if deadlineErr := conn.SetWriteDeadline(time.Now().Add(writeWait)); deadlineErr != nil {
					return deadlineErr
				}
				return conn.WriteMessage(websocket.TextMessage, payload)
			})
			if err != nil {
				return &TransportError{Addr: c.addr, Err: err}
			}
		}
	}
}

// websock serializes concurrent reads and writes to a *websocket.Conn,
// which permits only one of each in flight at a time.
type websock struct {
	readSem  chan struct{}
	writeSem chan struct{}
	conn     *websocket.Conn
}

func newWebsock(conn *websocket.Conn) *websock {
	return &websock{
		readSem:  make(chan struct{}, 1),
		writeSem: make(chan struct{}, 1),
		conn:     conn,
	}
}

// Conn returns the underlying connection. Only safe for non-concurrent
// setup, e.g. installing handlers before Sync starts.
func (s *websock) Conn() *websocket.Conn { return s.conn }

// Close performs the WebSocket close handshake and releases the
// connection. Callers must ensure no other reader/writer is active.
func (s *websock) Close() {
	s.readSem <- struct{}{}
	s.writeSem <- struct{}{}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	s.conn.Close()
}

func (s *websock) Read(ctx context.Context, fn func(*websocket.Conn) error) error {
	select {
	case <-ctx.Done():
		return nil
	case s.readSem <- struct{}{}:
		defer func() { <-s.readSem }()
		return fn(s.conn)
	case <-time.After(readDeadline):
		return ErrSockCongestion
	}
}

func (s *websock) Write(ctx context.Context, fn func(*websocket.Conn) error) error {
	select {
	case <-ctx.Done():
		return nil
	case s.writeSem <- struct{}{}:
		defer func() { <-s.writeSem }()
		return fn(s.conn)
	case <-time.After(writeDeadline):
		return ErrSockCongestion
	}
}
