package commitmentRepo

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

// CommitmentRepository defines methods for order-book data access.
type CommitmentRepository interface {
	Create(c *models.Commitment) error
	GetByID(id string) (*models.Commitment, error)
	ListByDeal(dealID string) ([]models.Commitment, error)
	ListByDealAndLender(dealID, lenderID string) ([]models.Commitment, error)
	Update(c *models.Commitment) error
}

// MongoCommitmentRepo implements CommitmentRepository using MongoDB.
type MongoCommitmentRepo struct {
	coll *mongo.Collection
}

// NewMongoCommitmentRepo creates a new instance of CommitmentRepository using MongoDB.
func NewMongoCommitmentRepo() CommitmentRepository {
	repo := &MongoCommitmentRepo{coll: database.Collection("commitments")}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "dealId", Value: 1}, {Key: "lenderId", Value: 1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new commitment.
func (r *MongoCommitmentRepo) Create(c *models.Commitment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create commitment: %w", err)
	}
	return nil
}

// GetByID retrieves a commitment by its unique ID.
func (r *MongoCommitmentRepo) GetByID(id string) (*models.Commitment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var c models.Commitment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to fetch commitment with id %s: %w", id, err)
	}
	return &c, nil
}

// ListByDeal retrieves the full order book on a deal, largest first.
func (r *MongoCommitmentRepo) ListByDeal(dealID string) ([]models.Commitment, error) {
	return r.find(bson.M{"dealId": dealID})
}

// ListByDealAndLender retrieves one lender's commitments on a deal.
func (r *MongoCommitmentRepo) ListByDealAndLender(dealID, lenderID string) ([]models.Commitment, error) {
	return r.find(bson.M{"dealId": dealID, "lenderId": lenderID})
}

func (r *MongoCommitmentRepo) find(filter bson.M) ([]models.Commitment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "amount", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve commitments: %w", err)
	}
	defer cursor.Close(ctx)

	var commitments []models.Commitment
	for cursor.Next(ctx) {
		var c models.Commitment
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode commitment: %w", err)
		}
		commitments = append(commitments, c)
	}
	return commitments, nil
}

// Update modifies an existing commitment.
func (r *MongoCommitmentRepo) Update(c *models.Commitment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": c.ID}, bson.M{"$set": c})
	if err != nil {
		return fmt.Errorf("failed to update commitment with id %s: %w", c.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("commitment with id %s not found", c.ID)
	}
	return nil
}
