package checklistRepo

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

// ChecklistRepository defines methods for closing-checklist data access.
type ChecklistRepository interface {
	Create(item *models.ChecklistItem) error
	GetByID(id string) (*models.ChecklistItem, error)
	ListByDeal(dealID string) ([]models.ChecklistItem, error)
	Update(item *models.ChecklistItem) error
}

// MongoChecklistRepo implements ChecklistRepository using MongoDB.
type MongoChecklistRepo struct {
	coll *mongo.Collection
}

// NewMongoChecklistRepo creates a new instance of ChecklistRepository using MongoDB.
func NewMongoChecklistRepo() ChecklistRepository {
	repo := &MongoChecklistRepo{coll: database.Collection("checklist")}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "dealId", Value: 1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new checklist item.
func (r *MongoChecklistRepo) Create(item *models.ChecklistItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create checklist item: %w", err)
	}
	return nil
}

// GetByID retrieves a checklist item by its unique ID.
func (r *MongoChecklistRepo) GetByID(id string) (*models.ChecklistItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var item models.ChecklistItem
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to fetch checklist item with id %s: %w", id, err)
	}
	return &item, nil
}

// ListByDeal retrieves all checklist items on a deal in creation order.
func (r *MongoChecklistRepo) ListByDeal(dealID string) ([]models.ChecklistItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"dealId": dealID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checklist for deal %s: %w", dealID, err)
	}
	defer cursor.Close(ctx)

	var items []models.ChecklistItem
	for cursor.Next(ctx) {
		var item models.ChecklistItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode checklist item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Update modifies an existing checklist item.
func (r *MongoChecklistRepo) Update(item *models.ChecklistItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	item.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": item.ID}, bson.M{"$set": item})
	if err != nil {
		return fmt.Errorf("failed to update checklist item with id %s: %w", item.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("checklist item with id %s not found", item.ID)
	}
	return nil
}
