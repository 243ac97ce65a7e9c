package socket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"bloodlink/auth"
	"bloodlink/domain/event"
	"bloodlink/runtime"
	"bloodlink/services"
)

// Server upgrades authenticated HTTP requests into live socket sessions
// and dispatches their inbound events to the coordination services.
type Server struct {
	log        *slog.Logger
	resolver   auth.Resolver
	registry   *runtime.Registry
	requests   services.IRequestService
	chat       services.IChatService
	upgrader   websocket.Upgrader
	bufferSize int
}

func NewServer(log *slog.Logger, resolver auth.Resolver, registry *runtime.Registry,
	requests services.IRequestService, chat services.IChatService, bufferSize int) *Server {
	return &Server{
		log:      log,
		resolver: resolver,
		registry: registry,
		requests: requests,
		chat:     chat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		bufferSize: bufferSize,
	}
}

// ServeHTTP is the socket handshake. Authentication happens before the
// upgrade: a missing, invalid or unknown-user credential is refused at the
// connection level and never enters the room-router topology.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, err := s.resolver.Authenticate(r.Context(), handshakeCredential(r))
	if err != nil {
		s.log.Warn("Handshake refused", "error", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Upgrade failed", "error", err)
		return
	}

	session := NewSession(s.log, conn, identity, uuid.NewString(), s.bufferSize)
	s.registry.Register(session.ID, session)
	s.log.Info("Session connected", "session", session.ID, "user", identity.UserID)

	go session.WritePump()
	_ = session.Consume(r.Context(), event.Welcome{
		UserID:  identity.UserID,
		Name:    identity.Name,
		Message: "connected",
	})

	s.readLoop(session)

	// All room memberships are discarded here; the client re-joins after
	// reconnecting. In-flight writes still complete and their broadcasts
	// simply no longer reach this session.
	s.registry.Unregister(session.ID)
	session.Close()
	s.log.Info("Session disconnected", "session", session.ID, "user", identity.UserID)
}

func (s *Server) readLoop(session *Session) {
	session.conn.SetReadDeadline(time.Now().Add(pongWait))
	session.conn.SetPongHandler(func(string) error {
		return session.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := session.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("Unexpected close", "session", session.ID, "error", err)
			}
			return
		}

		var env inboundEnvelope
		if err := json.Unmarshal(raw, &env); err != nil || env.Event == "" {
			s.emit(session, event.Error{Message: "malformed event envelope"})
			continue
		}
		s.dispatch(session, env)
	}
}

// handshakeCredential accepts the token either as a query parameter or as
// a standard bearer header, mirroring the HTTP surface.
func handshakeCredential(r *http.Request) string {
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
