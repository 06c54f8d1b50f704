package invitationRepo

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

// MongoInvitationRepo implements InvitationRepository using MongoDB.
type MongoInvitationRepo struct {
	coll *mongo.Collection
}

// NewMongoInvitationRepo creates a new instance of InvitationRepository
// using MongoDB.
func NewMongoInvitationRepo() InvitationRepository {
	repo := &MongoInvitationRepo{coll: database.Collection("invitations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces invitation uniqueness per (dealId, lenderId) with
// a compound unique index.
func (r *MongoInvitationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "dealId", Value: 1}, {Key: "lenderId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "lenderId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new invitation document. A duplicate (dealId, lenderId)
// pair surfaces as a mongo duplicate-key error.
func (r *MongoInvitationRepo) Create(inv *models.Invitation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, inv)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("invitation for lender %s on deal %s already exists", inv.LenderID, inv.DealID)
		}
		return fmt.Errorf("failed to create invitation: %w", err)
	}
	return nil
}

// GetByDealAndLender retrieves the invitation for a (dealId, lenderId) pair.
func (r *MongoInvitationRepo) GetByDealAndLender(dealID, lenderID string) (*models.Invitation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inv models.Invitation
	filter := bson.M{"dealId": dealID, "lenderId": lenderID}
	if err := r.coll.FindOne(ctx, filter).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invitation for deal %s lender %s: %w", dealID, lenderID, err)
	}
	return &inv, nil
}

// ListByDeal retrieves all invitations on a deal.
func (r *MongoInvitationRepo) ListByDeal(dealID string) ([]models.Invitation, error) {
	return r.find(bson.M{"dealId": dealID})
}

// ListByLender retrieves all invitations held by a lender.
func (r *MongoInvitationRepo) ListByLender(lenderID string) ([]models.Invitation, error) {
	return r.find(bson.M{"lenderId": lenderID})
}

func (r *MongoInvitationRepo) find(filter bson.M) ([]models.Invitation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invitations: %w", err)
	}
	defer cursor.Close(ctx)

	var invitations []models.Invitation
	for cursor.Next(ctx) {
		var inv models.Invitation
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}
	return invitations, nil
}

// Update modifies an existing invitation document.
func (r *MongoInvitationRepo) Update(inv *models.Invitation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	inv.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": inv.ID}, bson.M{"$set": inv})
	if err != nil {
		return fmt.Errorf("failed to update invitation with id %s: %w", inv.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invitation with id %s not found", inv.ID)
	}
	return nil
}
