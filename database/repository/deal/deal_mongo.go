package dealRepo

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

// MongoDealRepo implements DealRepository using MongoDB.
type MongoDealRepo struct {
	coll *mongo.Collection
}

// NewMongoDealRepo creates a new instance of DealRepository using MongoDB.
func NewMongoDealRepo() DealRepository {
	repo := &MongoDealRepo{coll: database.Collection("deals")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDealRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "stage", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a deal by its unique ID.
func (r *MongoDealRepo) GetByID(id string) (*models.Deal, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var deal models.Deal
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&deal); err != nil {
		return nil, fmt.Errorf("failed to fetch deal with id %s: %w", id, err)
	}
	return &deal, nil
}

// GetAll retrieves all deals, newest first.
func (r *MongoDealRepo) GetAll() ([]models.Deal, error) {
	return r.find(bson.M{})
}

// GetByIDs retrieves the deals whose IDs are in the given set.
func (r *MongoDealRepo) GetByIDs(ids []string) ([]models.Deal, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(bson.M{"id": bson.M{"$in": ids}})
}

func (r *MongoDealRepo) find(filter bson.M) ([]models.Deal, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve deals: %w", err)
	}
	defer cursor.Close(ctx)

	var deals []models.Deal
	for cursor.Next(ctx) {
		var d models.Deal
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode deal: %w", err)
		}
		deals = append(deals, d)
	}
	return deals, nil
}

// Create inserts a new deal document.
func (r *MongoDealRepo) Create(deal *models.Deal) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	deal.CreatedAt = now
	deal.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, deal)
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}
	return nil
}

// Update modifies an existing deal document.
func (r *MongoDealRepo) Update(deal *models.Deal) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	deal.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": deal.ID}, bson.M{"$set": deal})
	if err != nil {
		return fmt.Errorf("failed to update deal with id %s: %w", deal.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("deal with id %s not found", deal.ID)
	}
	return nil
}

// Delete removes a deal document by its ID.
func (r *MongoDealRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete deal with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("deal with id %s not found", id)
	}
	return nil
}
