package models

import "time"

// Chat is the group conversation attached to a match. Its participant set is
// an eventually-consistent projection of the match's confirmed participants
// plus the court owner.
type Chat struct {
	ID             string      `bson:"id" json:"id"`
	MatchID        string      `bson:"match_id" json:"matchId"`
	ParticipantIDs []string    `bson:"participant_ids" json:"participantIds"`
	Title          string      `bson:"title" json:"title"`
	LastMessage    LastMessage `bson:"last_message" json:"lastMessage"`
	CreatedAt      time.Time   `bson:"created_at" json:"createdAt"`
}

// LastMessage is the preview stored on the chat document for ordering.
type LastMessage struct {
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ChatMessage is a single message in a chat.
type ChatMessage struct {
	ID        string    `bson:"id" json:"id"`
	ChatID    string    `bson:"chat_id" json:"chatId"`
	SenderID  string    `bson:"sender_id" json:"senderId"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
