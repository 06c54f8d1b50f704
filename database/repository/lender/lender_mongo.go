package lenderRepo

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

// LenderRepository defines methods for lender data access.
type LenderRepository interface {
	GetByID(id string) (*models.Lender, error)
	GetAll() ([]models.Lender, error)
	Create(lender *models.Lender) error
}

// MongoLenderRepo implements LenderRepository using MongoDB.
type MongoLenderRepo struct {
	coll *mongo.Collection
}

// NewMongoLenderRepo creates a new instance of LenderRepository using MongoDB.
func NewMongoLenderRepo() LenderRepository {
	repo := &MongoLenderRepo{coll: database.Collection("lenders")}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// GetByID retrieves a lender by its unique ID.
func (r *MongoLenderRepo) GetByID(id string) (*models.Lender, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var lender models.Lender
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lender); err != nil {
		return nil, fmt.Errorf("failed to fetch lender with id %s: %w", id, err)
	}
	return &lender, nil
}

// GetAll retrieves all lenders sorted by name.
func (r *MongoLenderRepo) GetAll() ([]models.Lender, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lenders: %w", err)
	}
	defer cursor.Close(ctx)

	var lenders []models.Lender
	for cursor.Next(ctx) {
		var l models.Lender
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode lender: %w", err)
		}
		lenders = append(lenders, l)
	}
	return lenders, nil
}

// Create inserts a new lender document.
func (r *MongoLenderRepo) Create(lender *models.Lender) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	lender.CreatedAt = now
	lender.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, lender); err != nil {
		return fmt.Errorf("failed to create lender: %w", err)
	}
	return nil
}
