package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/careerhub/internal/domain"
)

// OpportunityRepository handles persistence for listings.
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *domain.Opportunity) error
	Update(ctx context.Context, opportunity *domain.Opportunity) error
	GetByID(ctx context.Context, id string) (*domain.Opportunity, error)
	ListByHandle(ctx context.Context, handle string) ([]domain.Opportunity, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByHandle(ctx context.Context, handle string) (int64, error)
}

type opportunityRepository struct {
	collection *mongo.Collection
}

// NewOpportunityRepository instantiates the repository.
func NewOpportunityRepository(db *mongo.Database) OpportunityRepository {
	return &opportunityRepository{collection: db.Collection("opportunities")}
}

func (r *opportunityRepository) Create(ctx context.Context, opportunity *domain.Opportunity) error {
	now := time.Now().UTC()
	opportunity.CreatedAt = now
	opportunity.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, opportunity)
	return translateWriteError(err)
}

func (r *opportunityRepository) Update(ctx context.Context, opportunity *domain.Opportunity) error {
	opportunity.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"kind":        opportunity.Kind,
		"title":       opportunity.Title,
		"description": opportunity.Description,
		"location":    opportunity.Location,
		"updated_at":  opportunity.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": opportunity.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *opportunityRepository) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	var opportunity domain.Opportunity
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&opportunity); err != nil {
		return nil, err
	}
	return &opportunity, nil
}

func (r *opportunityRepository) ListByHandle(ctx context.Context, handle string) ([]domain.Opportunity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"company_handle": handle}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.Opportunity
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *opportunityRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *opportunityRepository) DeleteByHandle(ctx context.Context, handle string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"company_handle": handle})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
