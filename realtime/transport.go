package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/siakad-id/siakad/core"
)

// retryDelay paces reconnection attempts after a dropped connection.
const retryDelay = 5 * time.Second

// WebsocketTransport speaks the pusher-compatible protocol the broadcast
// server exposes over a websocket. It reconnects on its own after drops;
// Close stops it for good.
type WebsocketTransport struct {
	conf   core.RealtimeConfig
	build  string
	dialer *websocket.Dialer

	mu     sync.Mutex
	conn   *websocket.Conn
	cancel context.CancelFunc
}

var _ Transport = (*WebsocketTransport)(nil)

func NewWebsocketTransport(conf core.RealtimeConfig, build string) *WebsocketTransport {
	return &WebsocketTransport{
		conf:   conf,
		build:  build,
		dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

func (t *WebsocketTransport) endpoint() string {
	scheme := "ws"
	if t.conf.TLS {
		scheme = "wss"
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     fmt.Sprintf("%s:%d", t.conf.Host, t.conf.Port),
		Path:     "/app/" + t.conf.Key,
		RawQuery: url.Values{"protocol": {"7"}, "client": {"go"}, "version": {t.build}}.Encode(),
	}
	return u.String()
}

// Connect dials the endpoint and starts the read loop. The returned stream
// carries lifecycle events until Close or context cancellation.
func (t *WebsocketTransport) Connect(ctx context.Context) (<-chan Event, error) {
	ctx, cancel := context.WithCancel(ctx)

	conn, _, err := t.dialer.DialContext(ctx, t.endpoint(), nil)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "dialing realtime endpoint")
	}

	t.mu.Lock()
	t.conn = conn
	t.cancel = cancel
	t.mu.Unlock()

	events := make(chan Event, 8)
	go t.run(ctx, conn, events)
	return events, nil
}

func (t *WebsocketTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	if t.conn != nil {
		return t.conn.Close()
	}
	return nil
}

// frame is one pusher protocol message.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func (t *WebsocketTransport) run(ctx context.Context, conn *websocket.Conn, events chan<- Event) {
	defer close(events)

	for {
		t.readLoop(conn, events)
		if ctx.Err() != nil {
			return
		}

		// dropped: retry until the context is done
		events <- Event{Kind: EventDisconnected}
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
			events <- Event{Kind: EventConnecting}
			var err error
			conn, _, err = t.dialer.DialContext(ctx, t.endpoint(), nil)
			if err == nil {
				break
			}
			events <- Event{Kind: EventError, Detail: errors.Wrap(err, "redialing realtime endpoint")}
		}

		t.mu.Lock()
		t.conn = conn
		t.mu.Unlock()
	}
}

// readLoop consumes frames until the connection drops.
func (t *WebsocketTransport) readLoop(conn *websocket.Conn, events chan<- Event) {
	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			return
		}
		switch f.Event {
		case "pusher:connection_established":
			events <- Event{Kind: EventConnected}
		case "pusher:error":
			events <- Event{Kind: EventError, Detail: errors.Errorf("server error: %s", f.Data)}
		}
	}
}
