//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"bloodlink/domain"
	"bloodlink/domain/event"
)

// EventSink is one session's outbound channel. Consume must not block the
// caller beyond enqueueing; slow consumers are the sink's own problem.
type EventSink interface {
	Consume(ctx context.Context, e event.Outbound) error
}

// IRegistry is the room-router surface the coordination services drive.
// Delivery is best-effort, exactly once per currently-joined session, with
// no acknowledgement and no persistence for offline members.
type IRegistry interface {
	Join(connID string, room domain.Room)
	Leave(connID string, room domain.Room)
	InRoom(connID string, room domain.Room) bool
	EmitToRoom(ctx context.Context, room domain.Room, e event.Outbound)
	EmitTo(ctx context.Context, connID string, e event.Outbound)
	BroadcastExcept(ctx context.Context, exceptConnID string, e event.Outbound)
}
