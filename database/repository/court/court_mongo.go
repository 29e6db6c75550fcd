package courtRepo

import (
	"context"
	"fmt"
	"time"

	"quadrafacil/config"
	"quadrafacil/database"
	"quadrafacil/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCourtRepo implements CourtRepository using MongoDB.
type MongoCourtRepo struct {
	courtColl *mongo.Collection
}

// NewMongoCourtRepo constructs a new instance of MongoCourtRepo.
func NewMongoCourtRepo() CourtRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoCourtRepo{
		courtColl: db.Collection("courts"),
	}
}

func (repo *MongoCourtRepo) GetByID(ctx context.Context, courtID string) (*models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var court models.Court
	if err := repo.courtColl.FindOne(ctx, bson.M{"id": courtID}).Decode(&court); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching court with id %s: %w", courtID, err)
	}
	return &court, nil
}
