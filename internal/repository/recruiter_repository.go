package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/careerhub/internal/domain"
)

// RecruiterRepository handles the staff membership edges.
type RecruiterRepository interface {
	Create(ctx context.Context, recruiter *domain.Recruiter) error
	Exists(ctx context.Context, username, handle string) (bool, error)
	ExistsForUsername(ctx context.Context, username string) (bool, error)
	Delete(ctx context.Context, username, handle string) (bool, error)
	DeleteByHandle(ctx context.Context, handle string) (int64, error)
	DeleteByUsername(ctx context.Context, username string) (int64, error)
}

type recruiterRepository struct {
	collection *mongo.Collection
}

// NewRecruiterRepository instantiates the repository.
func NewRecruiterRepository(db *mongo.Database) RecruiterRepository {
	return &recruiterRepository{collection: db.Collection("recruiters")}
}

func (r *recruiterRepository) Create(ctx context.Context, recruiter *domain.Recruiter) error {
	recruiter.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, recruiter)
	return translateWriteError(err)
}

func (r *recruiterRepository) Exists(ctx context.Context, username, handle string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"username": username, "company_handle": handle}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *recruiterRepository) ExistsForUsername(ctx context.Context, username string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *recruiterRepository) Delete(ctx context.Context, username, handle string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"username": username, "company_handle": handle})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *recruiterRepository) DeleteByHandle(ctx context.Context, handle string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"company_handle": handle})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *recruiterRepository) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"username": username})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
