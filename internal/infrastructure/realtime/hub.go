// Package realtime implements the websocket client for the backend payment
// hub. The hub speaks a JSON protocol with 0x1e-delimited frames: a protocol
// handshake, then invocations ("JoinUserGroup" outbound, "PixPaymentUpdated"
// inbound) and keep-alive pings.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

const (
	recordSeparator  = '\x1e'
	handshakeTimeout = 10 * time.Second
	reconnectDelay   = 5 * time.Second

	msgTypeInvocation = 1
	msgTypePing       = 6

	eventPaymentUpdated = "PixPaymentUpdated"
	targetJoinGroup     = "JoinUserGroup"
)

var apiSuffix = regexp.MustCompile(`/api/?$`)

// HubURL derives the websocket hub endpoint from the REST base URL: the /api
// path suffix is stripped, the scheme switched to ws(s), and hubPath
// appended.
func HubURL(baseURL, hubPath string) string {
	base := apiSuffix.ReplaceAllString(strings.TrimRight(baseURL, "/"), "")
	switch {
	case strings.HasPrefix(base, "https"):
		base = "wss" + base[len("https"):]
	case strings.HasPrefix(base, "http"):
		base = "ws" + base[len("http"):]
	}
	if !strings.HasPrefix(hubPath, "/") {
		hubPath = "/" + hubPath
	}
	return base + hubPath
}

// hubMessage is one frame in either direction.
type hubMessage struct {
	Type      int               `json:"type"`
	Target    string            `json:"target,omitempty"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

// HubClient maintains one hub connection per watched email. Each watch lives
// for the credits screen's lifetime: acquired on entry, released on exit.
// Reconnection is handled here with a fixed delay; callers never retry.
type HubClient struct {
	mu       sync.Mutex
	url      string
	sink     ports.PaymentSink
	log      zerolog.Logger
	watchers map[string]context.CancelFunc
}

// NewHubClient builds a HubClient delivering matched events to sink.
func NewHubClient(url string, sink ports.PaymentSink, log zerolog.Logger) *HubClient {
	return &HubClient{
		url:      url,
		sink:     sink,
		log:      log,
		watchers: make(map[string]context.CancelFunc),
	}
}

// Watch opens a connection joined to the group for email. Watching an
// already-watched email is a no-op.
func (h *HubClient) Watch(ctx context.Context, email string) error {
	key := strings.ToLower(email)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.watchers[key]; ok {
		return nil
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	h.watchers[key] = cancel
	go h.run(watchCtx, email)
	return nil
}

// Unwatch tears the email's connection down. Unknown emails are ignored.
func (h *HubClient) Unwatch(email string) {
	key := strings.ToLower(email)

	h.mu.Lock()
	defer h.mu.Unlock()
	if cancel, ok := h.watchers[key]; ok {
		cancel()
		delete(h.watchers, key)
	}
}

// Close releases every active watch.
func (h *HubClient) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key, cancel := range h.watchers {
		cancel()
		delete(h.watchers, key)
	}
	return nil
}

// run owns one watch: connect, join, read until failure, then reconnect
// after a fixed delay. Errors are logged, never surfaced; the one-shot
// charge flow works without the live channel.
func (h *HubClient) run(ctx context.Context, email string) {
	for {
		if err := h.session(ctx, email); err != nil {
			if ctx.Err() != nil {
				return
			}
			h.log.Warn().Err(err).Str("email", email).Msg("payment hub connection lost")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (h *HubClient) session(ctx context.Context, email string) error {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, h.url, nil)
	if err != nil {
		return fmt.Errorf("hub dial: %w", err)
	}
	defer conn.Close()

	// Close the socket as soon as the watch is released so the read loop
	// unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			)
			conn.Close()
		case <-done:
		}
	}()

	if err := writeFrame(conn, map[string]any{"protocol": "json", "version": 1}); err != nil {
		return fmt.Errorf("hub handshake: %w", err)
	}

	join := hubMessage{Type: msgTypeInvocation, Target: targetJoinGroup}
	arg, _ := json.Marshal(email)
	join.Arguments = []json.RawMessage{arg}
	if err := writeFrame(conn, join); err != nil {
		return fmt.Errorf("join group: %w", err)
	}

	h.log.Info().Str("email", email).Msg("payment hub joined")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("hub read: %w", err)
		}
		for _, frame := range splitFrames(raw) {
			h.handleFrame(conn, frame, email)
		}
	}
}

func (h *HubClient) handleFrame(conn *websocket.Conn, frame []byte, email string) {
	var msg hubMessage
	if err := json.Unmarshal(frame, &msg); err != nil {
		return
	}

	switch msg.Type {
	case msgTypePing:
		_ = writeFrame(conn, hubMessage{Type: msgTypePing})
	case msgTypeInvocation:
		if msg.Target != eventPaymentUpdated || len(msg.Arguments) == 0 {
			return
		}
		var update domain.PaymentUpdate
		if err := json.Unmarshal(msg.Arguments[0], &update); err != nil {
			return
		}
		// Events for other users share the socket's group namespace;
		// discard anything not addressed to the watched email.
		if !update.Matches(email) {
			h.log.Debug().Str("event_email", update.Email).Msg("discarding payment update for another user")
			return
		}
		h.sink.Apply(update)
	}
}

func writeFrame(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, append(b, recordSeparator))
}

func splitFrames(raw []byte) [][]byte {
	var frames [][]byte
	for _, part := range strings.Split(string(raw), string(rune(recordSeparator))) {
		if part != "" {
			frames = append(frames, []byte(part))
		}
	}
	return frames
}
