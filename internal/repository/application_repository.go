package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/careerhub/internal/domain"
)

// ApplicationRepository handles persistence for candidate submissions.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	ListByOpportunity(ctx context.Context, opportunityID string) ([]domain.Application, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type applicationRepository struct {
	collection *mongo.Collection
}

// NewApplicationRepository instantiates the repository.
func NewApplicationRepository(db *mongo.Database) ApplicationRepository {
	return &applicationRepository{collection: db.Collection("applications")}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	application.SubmittedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, application)
	return translateWriteError(err)
}

func (r *applicationRepository) ListByOpportunity(ctx context.Context, opportunityID string) ([]domain.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"opportunity_id": opportunityID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.Application
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *applicationRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"applicant_email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
