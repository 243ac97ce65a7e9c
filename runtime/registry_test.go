package runtime

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bloodlink/domain"
	"bloodlink/domain/event"
)

type recordingSink struct {
	events []event.Outbound
}

func (s *recordingSink) Consume(_ context.Context, e event.Outbound) error {
	s.events = append(s.events, e)
	return nil
}

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.DiscardHandler))
}

func TestRegistry_EmitToRoom_One_Room_One_Session(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	connID := uuid.NewString()
	room := domain.UserRoom("alice")
	sink := &recordingSink{}

	// Given a registered session joined to its private room
	registry.Register(connID, sink)
	registry.Join(connID, room)

	// When an event is emitted to the room
	registry.EmitToRoom(context.Background(), room, event.Welcome{UserID: "alice"})

	// Then the session receives it exactly once
	req.Len(sink.events, 1)
	req.Equal("welcome", sink.events[0].Event())
}

func TestRegistry_Join_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	connID := uuid.NewString()
	room := domain.ConversationRoom("request:r1")
	sink := &recordingSink{}

	// Given a session that joined the same room twice
	registry.Register(connID, sink)
	registry.Join(connID, room)
	registry.Join(connID, room)

	// When an event is emitted to the room
	registry.EmitToRoom(context.Background(), room, event.UserTyping{UserID: "alice", IsTyping: true})

	// Then the session is not double-counted for fan-out
	req.Len(sink.events, 1)
}

func TestRegistry_EmitToRoom_Multiple_Sessions(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	room := domain.ConversationRoom("request:r1")
	sink1 := &recordingSink{}
	sink2 := &recordingSink{}
	outsider := &recordingSink{}

	// Given two sessions in the room and one outside it
	registry.Register("conn-1", sink1)
	registry.Register("conn-2", sink2)
	registry.Register("conn-3", outsider)
	registry.Join("conn-1", room)
	registry.Join("conn-2", room)

	// When an event is emitted to the room
	registry.EmitToRoom(context.Background(), room, event.UserJoined{UserID: "bob"})

	// Then only the joined sessions receive it
	req.Len(sink1.events, 1)
	req.Len(sink2.events, 1)
	req.Empty(outsider.events)
}

func TestRegistry_BroadcastExcept_Skips_Sender(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	sender := &recordingSink{}
	other := &recordingSink{}

	registry.Register("conn-sender", sender)
	registry.Register("conn-other", other)

	// When an event is broadcast excluding the sender
	registry.BroadcastExcept(context.Background(), "conn-sender", event.NewBloodRequest{ID: "r1"})

	// Then every session but the sender receives it
	req.Empty(sender.events)
	req.Len(other.events, 1)
}

func TestRegistry_BroadcastExcept_Empty_ConnID_Reaches_All(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	sink1 := &recordingSink{}
	sink2 := &recordingSink{}

	registry.Register("conn-1", sink1)
	registry.Register("conn-2", sink2)

	// When a global status broadcast originates from an HTTP caller
	registry.BroadcastExcept(context.Background(), "", event.RequestStatusUpdated{RequestID: "r1"})

	req.Len(sink1.events, 1)
	req.Len(sink2.events, 1)
}

func TestRegistry_Unregister_Drops_All_Memberships(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	connID := uuid.NewString()
	userRoom := domain.UserRoom("alice")
	convRoom := domain.ConversationRoom("request:r1")
	sink := &recordingSink{}

	// Given a session joined to two rooms
	registry.Register(connID, sink)
	registry.Join(connID, userRoom)
	registry.Join(connID, convRoom)

	// When the session disconnects
	registry.Unregister(connID)

	// Then no room still counts it as a member
	req.False(registry.InRoom(connID, userRoom))
	req.False(registry.InRoom(connID, convRoom))

	// And later emissions never reach the dead sink
	registry.EmitToRoom(context.Background(), userRoom, event.Welcome{})
	registry.EmitToRoom(context.Background(), convRoom, event.Welcome{})
	req.Empty(sink.events)
}

func TestRegistry_Leave_One_Room_Keeps_Others(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	connID := uuid.NewString()
	userRoom := domain.UserRoom("alice")
	convRoom := domain.ConversationRoom("request:r1")
	sink := &recordingSink{}

	registry.Register(connID, sink)
	registry.Join(connID, userRoom)
	registry.Join(connID, convRoom)

	// When the session leaves only the conversation
	registry.Leave(connID, convRoom)

	// Then the private room membership survives
	req.False(registry.InRoom(connID, convRoom))
	req.True(registry.InRoom(connID, userRoom))
}

func TestRegistry_EmitTo_Unknown_Session_Is_Noop(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	sink := &recordingSink{}
	registry.Register("conn-1", sink)

	registry.EmitTo(context.Background(), "conn-unknown", event.Welcome{})

	req.Empty(sink.events)
}
