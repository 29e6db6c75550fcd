package chatRepo

import (
	"context"
	"fmt"
	"time"

	"quadrafacil/config"
	"quadrafacil/database"
	"quadrafacil/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	chatColl    *mongo.Collection
	messageColl *mongo.Collection
}

// NewMongoChatRepo constructs a new instance of MongoChatRepo.
func NewMongoChatRepo() ChatRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoChatRepo{
		chatColl:    db.Collection("chats"),
		messageColl: db.Collection("chat_messages"),
	}
}

func (repo *MongoChatRepo) Insert(ctx context.Context, chat *models.Chat) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.chatColl.InsertOne(ctx, chat); err != nil {
		return fmt.Errorf("error creating chat: %w", err)
	}
	return nil
}

func (repo *MongoChatRepo) GetByID(ctx context.Context, chatID string) (*models.Chat, error) {
	return repo.findOne(ctx, bson.M{"id": chatID})
}

func (repo *MongoChatRepo) GetByMatchID(ctx context.Context, matchID string) (*models.Chat, error) {
	return repo.findOne(ctx, bson.M{"match_id": matchID})
}

func (repo *MongoChatRepo) findOne(ctx context.Context, filter bson.M) (*models.Chat, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var chat models.Chat
	if err := repo.chatColl.FindOne(ctx, filter).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching chat: %w", err)
	}
	return &chat, nil
}

func (repo *MongoChatRepo) AddParticipant(ctx context.Context, matchID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"participant_ids": userID}}
	if _, err := repo.chatColl.UpdateOne(ctx, bson.M{"match_id": matchID}, update); err != nil {
		return fmt.Errorf("error adding chat participant: %w", err)
	}
	return nil
}

func (repo *MongoChatRepo) RemoveParticipant(ctx context.Context, matchID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"participant_ids": userID}}
	if _, err := repo.chatColl.UpdateOne(ctx, bson.M{"match_id": matchID}, update); err != nil {
		return fmt.Errorf("error removing chat participant: %w", err)
	}
	return nil
}

func (repo *MongoChatRepo) SetParticipants(ctx context.Context, matchID string, userIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"participant_ids": userIDs}}
	if _, err := repo.chatColl.UpdateOne(ctx, bson.M{"match_id": matchID}, update); err != nil {
		return fmt.Errorf("error replacing chat participants: %w", err)
	}
	return nil
}

func (repo *MongoChatRepo) ListByParticipant(ctx context.Context, userID string) ([]models.Chat, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "last_message.timestamp", Value: -1}})
	cursor, err := repo.chatColl.Find(ctx, bson.M{"participant_ids": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching chats: %w", err)
	}
	defer cursor.Close(ctx)

	var chats []models.Chat
	for cursor.Next(ctx) {
		var c models.Chat
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("error decoding chat: %w", err)
		}
		chats = append(chats, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return chats, nil
}

func (repo *MongoChatRepo) AppendMessage(ctx context.Context, msg *models.ChatMessage, preview string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.messageColl.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("error storing chat message: %w", err)
	}

	update := bson.M{
		"$set": bson.M{
			"last_message": models.LastMessage{Text: preview, Timestamp: msg.Timestamp},
		},
	}
	res, err := repo.chatColl.UpdateOne(ctx, bson.M{"id": msg.ChatID}, update)
	if err != nil {
		return fmt.Errorf("error updating chat preview: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
