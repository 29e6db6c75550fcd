package chat

import (
	"context"
	"errors"
	"time"

	chatRepo "quadrafacil/database/repository/chat"
	courtRepo "quadrafacil/database/repository/court"
	matchRepo "quadrafacil/database/repository/match"
	"quadrafacil/models"
	"quadrafacil/services/fault"
	"quadrafacil/services/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	chatCreatedText  = "chat created for the match!"
	defaultChatTitle = "match chat"
	previewRunes     = 50
)

// DefaultChatService implements Service.
type DefaultChatService struct {
	Chats    chatRepo.ChatRepository
	Matches  matchRepo.MatchRepository
	Courts   courtRepo.CourtRepository
	Identity identity.Directory
	Logger   *zap.Logger
}

func (svc *DefaultChatService) AddMember(ctx context.Context, matchID, userID string) error {
	return svc.Chats.AddParticipant(ctx, matchID, userID)
}

func (svc *DefaultChatService) RemoveMember(ctx context.Context, matchID, userID string) error {
	return svc.Chats.RemoveParticipant(ctx, matchID, userID)
}

func (svc *DefaultChatService) GetOrCreateMatchChat(ctx context.Context, callerID, matchID string) (*models.Chat, bool, error) {
	if existing, err := svc.Chats.GetByMatchID(ctx, matchID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, chatRepo.ErrNotFound) {
		return nil, false, err
	}

	m, err := svc.Matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, matchRepo.ErrNotFound) {
			return nil, false, fault.NotFound(ReasonMatchNotFound)
		}
		return nil, false, err
	}

	title := defaultChatTitle
	participants := append([]string(nil), m.ConfirmedParticipants...)
	if court, err := svc.Courts.GetByID(ctx, m.CourtID); err != nil {
		svc.Logger.Warn("court lookup failed while creating chat",
			zap.String("courtID", m.CourtID), zap.String("matchID", matchID), zap.Error(err))
	} else {
		title = court.Name
		if !contains(participants, court.OwnerID) {
			participants = append(participants, court.OwnerID)
		}
	}

	now := time.Now().UTC()
	chat := &models.Chat{
		ID:             uuid.New().String(),
		MatchID:        matchID,
		ParticipantIDs: participants,
		Title:          title,
		LastMessage:    models.LastMessage{Text: chatCreatedText, Timestamp: now},
		CreatedAt:      now,
	}
	if err := svc.Chats.Insert(ctx, chat); err != nil {
		return nil, false, err
	}

	svc.Logger.Info("match chat created",
		zap.String("chatID", chat.ID), zap.String("matchID", matchID),
		zap.Int("participants", len(participants)))
	return chat, true, nil
}

func (svc *DefaultChatService) ListUserChats(ctx context.Context, userID string) ([]models.ChatView, error) {
	chats, err := svc.Chats.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.ChatView, 0, len(chats))
	for _, c := range chats {
		view := models.ChatView{Chat: c}
		for _, id := range c.ParticipantIDs {
			if id != userID {
				view.OtherUserID = id
				break
			}
		}
		if view.OtherUserID != "" {
			profile, err := svc.Identity.Resolve(ctx, view.OtherUserID)
			if err != nil {
				profile = identity.Placeholder(view.OtherUserID)
			}
			view.OtherUserName = profile.DisplayName
		}
		views = append(views, view)
	}
	return views, nil
}

func (svc *DefaultChatService) SendMessage(ctx context.Context, userID, chatID, text string) error {
	if text == "" {
		return fault.InvalidInput(ReasonEmptyMessage)
	}

	chat, err := svc.Chats.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, chatRepo.ErrNotFound) {
			return fault.NotFound(ReasonChatNotFound)
		}
		return err
	}
	if !contains(chat.ParticipantIDs, userID) {
		return fault.Forbidden(ReasonNotChatMember)
	}

	msg := &models.ChatMessage{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		SenderID:  userID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	return svc.Chats.AppendMessage(ctx, msg, preview(text))
}

func (svc *DefaultChatService) SyncMatchMembership(ctx context.Context, m *models.Match) error {
	if _, err := svc.Chats.GetByMatchID(ctx, m.ID); err != nil {
		if errors.Is(err, chatRepo.ErrNotFound) {
			// No chat yet, nothing to reconcile.
			return nil
		}
		return err
	}

	desired := append([]string(nil), m.ConfirmedParticipants...)
	if court, err := svc.Courts.GetByID(ctx, m.CourtID); err == nil {
		if !contains(desired, court.OwnerID) {
			desired = append(desired, court.OwnerID)
		}
	}
	return svc.Chats.SetParticipants(ctx, m.ID, desired)
}

// preview truncates the message text for the chat's last-message field.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "..."
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
