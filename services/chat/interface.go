package chat

import (
	"context"

	"quadrafacil/models"
)

// Service manages match group chats. AddMember and RemoveMember form the
// membership bridge driven by match-engine events; the rest is the
// user-facing chat surface.
type Service interface {
	AddMember(ctx context.Context, matchID, userID string) error
	RemoveMember(ctx context.Context, matchID, userID string) error

	// GetOrCreateMatchChat returns the chat linked to the match, creating it
	// on first access with the confirmed participants plus the court owner.
	// The boolean reports whether the chat was created by this call.
	GetOrCreateMatchChat(ctx context.Context, callerID, matchID string) (*models.Chat, bool, error)

	ListUserChats(ctx context.Context, userID string) ([]models.ChatView, error)
	SendMessage(ctx context.Context, userID, chatID, text string) error

	// SyncMatchMembership resets the chat participant set to the match's
	// confirmed participants plus the court owner; used by the
	// reconciliation job to repair bridge divergence.
	SyncMatchMembership(ctx context.Context, m *models.Match) error
}

// Reason strings returned to callers.
const (
	ReasonMatchNotFound = "match not found"
	ReasonChatNotFound  = "chat not found"
	ReasonNotChatMember = "you are not a participant in this chat"
	ReasonEmptyMessage  = "message text is required"
)
