package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	req := require.New(t)

	// Active may reach any terminal state.
	req.True(CanTransition(RequestActive, RequestFulfilled))
	req.True(CanTransition(RequestActive, RequestCancelled))
	req.True(CanTransition(RequestActive, RequestExpired))

	// Terminal states absorb.
	req.False(CanTransition(RequestFulfilled, RequestCancelled))
	req.False(CanTransition(RequestCancelled, RequestActive))
	req.False(CanTransition(RequestExpired, RequestFulfilled))

	// Active is not a transition target.
	req.False(CanTransition(RequestActive, RequestActive))
}

func TestUrgency_Rank_Total_Order(t *testing.T) {
	req := require.New(t)

	levels := []Urgency{UrgencyLow, UrgencyCritical, UrgencyMedium, UrgencyHigh}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Rank() < levels[j].Rank() })

	req.Equal([]Urgency{UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow}, levels)
	req.False(Urgency("panic").Valid())
}

func TestConversationID_Is_Pure_Derivation(t *testing.T) {
	req := require.New(t)

	req.Equal("request:abc", ConversationID("abc"))
	req.Equal(ConversationID("abc"), ConversationID("abc"))
	req.Equal(Room("conversation:request:abc"), ConversationRoom(ConversationID("abc")))
	req.Equal(Room("user:u1"), UserRoom("u1"))
}
