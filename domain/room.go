package domain

// Room names a broadcast group of currently-connected sessions.
type Room string

// ConversationID derives the chat thread identifier for a request.
// Conversations are derived, never created: there is no separate
// conversation row anywhere in the store.
func ConversationID(requestID string) string {
	return "request:" + requestID
}

// UserRoom is the private notification room, exactly one per identity.
func UserRoom(userID string) Room {
	return Room("user:" + userID)
}

// ConversationRoom is the multi-party chat room for one conversation.
func ConversationRoom(conversationID string) Room {
	return Room("conversation:" + conversationID)
}
