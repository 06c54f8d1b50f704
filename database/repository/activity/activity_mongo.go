package activityRepo

import (
	"context"
	"fmt"
	"time"

	"dealroom/database"
	"dealroom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository is the append-only deal audit log.
type ActivityRepository interface {
	Append(entry *models.Activity) error
	ListByDeal(dealID string, limit int64) ([]models.Activity, error)
}

// MongoActivityRepo implements ActivityRepository using MongoDB.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo creates a new instance of ActivityRepository using MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	repo := &MongoActivityRepo{coll: database.Collection("activity")}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "dealId", Value: 1}, {Key: "at", Value: -1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Append inserts a new log entry.
func (r *MongoActivityRepo) Append(entry *models.Activity) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if entry.At.IsZero() {
		entry.At = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

// ListByDeal retrieves a deal's log entries, newest first.
func (r *MongoActivityRepo) ListByDeal(dealID string, limit int64) ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"dealId": dealID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activity for deal %s: %w", dealID, err)
	}
	defer cursor.Close(ctx)

	var entries []models.Activity
	for cursor.Next(ctx) {
		var e models.Activity
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode activity: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
