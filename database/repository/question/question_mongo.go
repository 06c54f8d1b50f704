package questionRepo

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

// QuestionRepository defines methods for Q&A data access.
type QuestionRepository interface {
	Create(q *models.Question) error
	GetByID(id string) (*models.Question, error)
	ListByDeal(dealID string) ([]models.Question, error)
	ListByDealAndLender(dealID, lenderID string) ([]models.Question, error)
	Update(q *models.Question) error
}

// MongoQuestionRepo implements QuestionRepository using MongoDB.
type MongoQuestionRepo struct {
	coll *mongo.Collection
}

// NewMongoQuestionRepo creates a new instance of QuestionRepository using MongoDB.
func NewMongoQuestionRepo() QuestionRepository {
	repo := &MongoQuestionRepo{coll: database.Collection("questions")}
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

// Create inserts a new question.
func (r *MongoQuestionRepo) Create(q *models.Question) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetByID retrieves a question by its unique ID.
func (r *MongoQuestionRepo) GetByID(id string) (*models.Question, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var q models.Question
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&q); err != nil {
		return nil, fmt.Errorf("failed to fetch question with id %s: %w", id, err)
	}
	return &q, nil
}

// ListByDeal retrieves all questions on a deal, newest first.
func (r *MongoQuestionRepo) ListByDeal(dealID string) ([]models.Question, error) {
	return r.find(bson.M{"dealId": dealID})
}

// ListByDealAndLender retrieves one lender's questions on a deal.
func (r *MongoQuestionRepo) ListByDealAndLender(dealID, lenderID string) ([]models.Question, error) {
	return r.find(bson.M{"dealId": dealID, "lenderId": lenderID})
}

func (r *MongoQuestionRepo) find(filter bson.M) ([]models.Question, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve questions: %w", err)
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	for cursor.Next(ctx) {
		var q models.Question
		if err := cursor.Decode(&q); err != nil {
			return nil, fmt.Errorf("failed to decode question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Update modifies an existing question.
func (r *MongoQuestionRepo) Update(q *models.Question) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": q.ID}, bson.M{"$set": q})
	if err != nil {
		return fmt.Errorf("failed to update question with id %s: %w", q.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("question with id %s not found", q.ID)
	}
	return nil
}
