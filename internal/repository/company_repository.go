package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/careerhub/internal/domain"
)

// CompanyRepository handles persistence for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByHandle(ctx context.Context, handle string) (*domain.Company, error)
	Delete(ctx context.Context, handle string) (bool, error)
}

// FounderRepository handles the ownership edges.
type FounderRepository interface {
	Create(ctx context.Context, founder *domain.Founder) error
	GetByHandle(ctx context.Context, handle string) (*domain.Founder, error)
	ExistsForUsername(ctx context.Context, username string) (bool, error)
	DeleteByHandle(ctx context.Context, handle string) error
}

type companyRepository struct {
	collection *mongo.Collection
}

// NewCompanyRepository instantiates the repository.
func NewCompanyRepository(db *mongo.Database) CompanyRepository {
	return &companyRepository{collection: db.Collection("companies")}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	company.RegisteredAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, company)
	return translateWriteError(err)
}

func (r *companyRepository) GetByHandle(ctx context.Context, handle string) (*domain.Company, error) {
	var company domain.Company
	if err := r.collection.FindOne(ctx, bson.M{"handle": handle}).Decode(&company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Delete(ctx context.Context, handle string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"handle": handle})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

type founderRepository struct {
	collection *mongo.Collection
}

// NewFounderRepository instantiates the repository.
func NewFounderRepository(db *mongo.Database) FounderRepository {
	return &founderRepository{collection: db.Collection("founders")}
}

func (r *founderRepository) Create(ctx context.Context, founder *domain.Founder) error {
	founder.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, founder)
	return translateWriteError(err)
}

func (r *founderRepository) GetByHandle(ctx context.Context, handle string) (*domain.Founder, error) {
	var founder domain.Founder
	if err := r.collection.FindOne(ctx, bson.M{"company_handle": handle}).Decode(&founder); err != nil {
		return nil, err
	}
	return &founder, nil
}

func (r *founderRepository) ExistsForUsername(ctx context.Context, username string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *founderRepository) DeleteByHandle(ctx context.Context, handle string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"company_handle": handle})
	return err
}
