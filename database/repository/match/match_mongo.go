package matchRepo

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

// MongoMatchRepo implements MatchRepository using MongoDB. It holds the
// booking collection as well so the open-match creation can link the booking
// in the same session transaction.
type MongoMatchRepo struct {
	matchColl   *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoMatchRepo constructs a new instance of MongoMatchRepo.
func NewMongoMatchRepo() MatchRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoMatchRepo{
		matchColl:   db.Collection("matches"),
		bookingColl: db.Collection("bookings"),
	}
}

func (repo *MongoMatchRepo) CreateForBooking(ctx context.Context, match *models.Match) error {
	client := repo.matchColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.matchColl.InsertOne(sc, match); err != nil {
			return fmt.Errorf("insert match failed: %w", err)
		}

		// Set-if-absent: linking twice with the same match id is a no-op,
		// any other existing link aborts the transaction.
		filter := bson.M{
			"id": match.ReservationID,
			"$or": bson.A{
				bson.M{"linked_match_id": bson.M{"$exists": false}},
				bson.M{"linked_match_id": match.ID},
			},
		}
		update := bson.M{
			"$set": bson.M{
				"linked_match_id": match.ID,
				"updated_at":      time.Now().UTC(),
			},
		}
		res, err := repo.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("link booking to match failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrAlreadyLinked
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrAlreadyLinked {
			return ErrAlreadyLinked
		}
		return fmt.Errorf("open match transaction failed: %w", err)
	}

	return nil
}

func (repo *MongoMatchRepo) GetByID(ctx context.Context, matchID string) (*models.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var match models.Match
	if err := repo.matchColl.FindOne(ctx, bson.M{"id": matchID}).Decode(&match); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching match with id %s: %w", matchID, err)
	}
	return &match, nil
}

// maxMutateRetries bounds the optimistic-concurrency retry loop.
const maxMutateRetries = 3

func (repo *MongoMatchRepo) Mutate(ctx context.Context, matchID string, fn func(*models.Match) error) (*models.Match, error) {
	for attempt := 0; attempt < maxMutateRetries; attempt++ {
		snapshot, err := repo.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}

		updated := *snapshot
		updated.ConfirmedParticipants = append([]string(nil), snapshot.ConfirmedParticipants...)
		updated.PendingRequests = append([]string(nil), snapshot.PendingRequests...)
		if err := fn(&updated); err != nil {
			return nil, err
		}
		updated.Revision = snapshot.Revision + 1

		opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		res, err := repo.matchColl.UpdateOne(opCtx,
			bson.M{"id": matchID, "revision": snapshot.Revision},
			bson.M{"$set": &updated},
		)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("error updating match %s: %w", matchID, err)
		}
		if res.MatchedCount == 1 {
			return &updated, nil
		}
		// Lost the race: another writer bumped the revision. Re-read and retry.
	}
	return nil, ErrConflict
}

func (repo *MongoMatchRepo) CancelByReservation(ctx context.Context, reservationID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.matchColl.UpdateMany(ctx,
		bson.M{"reservation_id": reservationID},
		bson.M{
			"$set": bson.M{"status": models.MatchStatusCancelled},
			"$inc": bson.M{"revision": 1},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("error cancelling matches for reservation %s: %w", reservationID, err)
	}
	return res.ModifiedCount, nil
}

func (repo *MongoMatchRepo) ListOpenAfter(ctx context.Context, after time.Time) ([]models.Match, error) {
	filter := bson.M{
		"status":     models.MatchStatusOpen,
		"start_time": bson.M{"$gt": after},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	return repo.find(ctx, filter, opts)
}

func (repo *MongoMatchRepo) ListActive(ctx context.Context) ([]models.Match, error) {
	filter := bson.M{"status": bson.M{"$ne": models.MatchStatusCancelled}}
	return repo.find(ctx, filter, options.Find())
}

func (repo *MongoMatchRepo) ListByParticipant(ctx context.Context, userID string) ([]models.Match, error) {
	filter := bson.M{"confirmed_participants": userID}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	return repo.find(ctx, filter, opts)
}

func (repo *MongoMatchRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.matchColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching matches: %w", err)
	}
	defer cursor.Close(ctx)

	var matches []models.Match
	for cursor.Next(ctx) {
		var m models.Match
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("error decoding match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return matches, nil
}

func (repo *MongoMatchRepo) SetPriceIfAbsent(ctx context.Context, matchID string, price float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The revision bump makes any in-flight Mutate re-read instead of
	// clobbering the backfilled value with its stale snapshot.
	filter := bson.M{"id": matchID, "price_total": bson.M{"$exists": false}}
	update := bson.M{
		"$set": bson.M{"price_total": price},
		"$inc": bson.M{"revision": 1},
	}
	if _, err := repo.matchColl.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error backfilling price for match %s: %w", matchID, err)
	}
	return nil
}
