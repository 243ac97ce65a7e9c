// Package runtime holds the per-connection session state and the room
// router. It routes events without containing business logic or domain
// rules.
package runtime

import (
	"context"
	"log/slog"
	"sync"

	"bloodlink/contract"
	"bloodlink/domain"
	"bloodlink/domain/event"
)

type Set map[string]struct{}

type session struct {
	sink  contract.EventSink
	rooms map[domain.Room]struct{}
}

// Registry owns the connection-id → sink table and the room membership
// sets. Lifecycle is tied 1:1 to connection open/close: Unregister drops
// every room membership and nothing is replayed on reconnect.
type Registry struct {
	mu          sync.RWMutex
	log         *slog.Logger
	sessions    map[string]*session
	roomMembers map[domain.Room]Set
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:         log,
		sessions:    make(map[string]*session),
		roomMembers: make(map[domain.Room]Set),
	}
}

// Register records a live connection. A second Register for the same
// connection id replaces the sink and resets room memberships.
func (r *Registry) Register(connID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[connID] = &session{sink: sink, rooms: make(map[domain.Room]struct{})}
}

// Unregister removes the session and every room membership it held.
// Empty rooms are deleted to keep the map from growing over time.
func (r *Registry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return
	}
	for room := range s.rooms {
		r.dropMember(room, connID)
	}
	delete(r.sessions, connID)
}

// Join subscribes a session to a room. Joining twice is a no-op: membership
// is a set, so repeat joins never double-count the session for fan-out.
func (r *Registry) Join(connID string, room domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return
	}
	s.rooms[room] = struct{}{}

	if _, ok := r.roomMembers[room]; !ok {
		r.roomMembers[room] = make(Set)
	}
	r.roomMembers[room][connID] = struct{}{}
}

func (r *Registry) Leave(connID string, room domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[connID]; ok {
		delete(s.rooms, room)
	}
	r.dropMember(room, connID)
}

func (r *Registry) InRoom(connID string, room domain.Room) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[room]
	if !ok {
		return false
	}
	_, ok = members[connID]
	return ok
}

// EmitToRoom delivers an event to every session currently joined to the
// room, each exactly once. Sinks are resolved under the read lock and
// consumed outside it so a slow connection never stalls the router.
func (r *Registry) EmitToRoom(ctx context.Context, room domain.Room, e event.Outbound) {
	r.mu.RLock()
	sinks := r.roomSinks(room)
	r.mu.RUnlock()

	r.deliver(ctx, sinks, e)
}

// EmitTo delivers an event to one session only, typically the originator
// of the operation that produced it.
func (r *Registry) EmitTo(ctx context.Context, connID string, e event.Outbound) {
	r.mu.RLock()
	var sink contract.EventSink
	if s, ok := r.sessions[connID]; ok {
		sink = s.sink
	}
	r.mu.RUnlock()

	if sink == nil {
		return
	}
	r.deliver(ctx, []contract.EventSink{sink}, e)
}

// BroadcastExcept delivers an event to every session except the named one.
func (r *Registry) BroadcastExcept(ctx context.Context, exceptConnID string, e event.Outbound) {
	r.mu.RLock()
	sinks := make([]contract.EventSink, 0, len(r.sessions))
	for id, s := range r.sessions {
		if id == exceptConnID {
			continue
		}
		sinks = append(sinks, s.sink)
	}
	r.mu.RUnlock()

	r.deliver(ctx, sinks, e)
}

func (r *Registry) deliver(ctx context.Context, sinks []contract.EventSink, e event.Outbound) {
	for _, sink := range sinks {
		if err := sink.Consume(ctx, e); err != nil {
			r.log.Debug("Dropping event for unreachable session", "event", e.Event(), "error", err)
		}
	}
}

// roomSinks must be called with the read lock held.
func (r *Registry) roomSinks(room domain.Room) []contract.EventSink {
	members, ok := r.roomMembers[room]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(members))
	for connID := range members {
		if s, exists := r.sessions[connID]; exists {
			sinks = append(sinks, s.sink)
		}
	}
	return sinks
}

// dropMember must be called with the write lock held.
func (r *Registry) dropMember(room domain.Room, connID string) {
	members, ok := r.roomMembers[room]
	if !ok {
		return
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(r.roomMembers, room)
	}
}
