package chatRepo

import (
	"context"
	"errors"

	"quadrafacil/models"
)

// ErrNotFound is returned when no chat exists for the given match or chat id.
var ErrNotFound = errors.New("chat not found")

// ChatRepository owns chat documents and their message collection.
type ChatRepository interface {
	Insert(ctx context.Context, chat *models.Chat) error
	GetByID(ctx context.Context, chatID string) (*models.Chat, error)
	GetByMatchID(ctx context.Context, matchID string) (*models.Chat, error)

	// AddParticipant and RemoveParticipant mutate the participant set of the
	// chat linked to matchID. Both are no-ops (not errors) when no chat
	// exists yet: the chat is created lazily on first open.
	AddParticipant(ctx context.Context, matchID, userID string) error
	RemoveParticipant(ctx context.Context, matchID, userID string) error

	// SetParticipants replaces the participant set wholesale; used by the
	// reconciliation job.
	SetParticipants(ctx context.Context, matchID string, userIDs []string) error

	// ListByParticipant returns chats containing userID, newest message first.
	ListByParticipant(ctx context.Context, userID string) ([]models.Chat, error)

	// AppendMessage stores the message and updates the chat's last-message
	// preview.
	AppendMessage(ctx context.Context, msg *models.ChatMessage, preview string) error
}
