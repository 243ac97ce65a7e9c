package socket

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"bloodlink/auth"
	"bloodlink/domain/event"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 45 * time.Second
)

// outboundEnvelope is the wire frame for server→client events.
type outboundEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Session wraps one live websocket connection. It implements
// contract.EventSink: the router enqueues events into a buffered channel
// and a dedicated write pump drains it, so a slow client never blocks
// fan-out. When the buffer is full the event is dropped, consistent with
// best-effort delivery.
type Session struct {
	ID       string
	Identity auth.Identity

	log      *slog.Logger
	conn     *websocket.Conn
	outbound chan event.Outbound
	done     chan struct{}
	once     sync.Once
}

func NewSession(log *slog.Logger, conn *websocket.Conn, identity auth.Identity, connID string, bufferSize int) *Session {
	return &Session{
		ID:       connID,
		Identity: identity,
		log:      log,
		conn:     conn,
		outbound: make(chan event.Outbound, bufferSize),
		done:     make(chan struct{}),
	}
}

// Consume is called by the room router. It never blocks the caller beyond
// enqueueing.
func (s *Session) Consume(ctx context.Context, e event.Outbound) error {
	select {
	case s.outbound <- e:
		return nil
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		s.log.Debug("Outbound buffer full, dropping event",
			"session", s.ID, "event", e.Event())
		return nil
	}
}

// WritePump serializes all writes to the connection: queued events and
// keepalive pings. gorilla/websocket allows at most one concurrent writer.
func (s *Session) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case e := <-s.outbound:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(outboundEnvelope{Event: e.Event(), Data: e}); err != nil {
				s.log.Debug("Write failed, closing session", "session", s.ID, "error", err)
				s.Close()
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *Session) Close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}
