package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/careerhub/internal/domain"
)

// AccountRepository defines persistence access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateResume(ctx context.Context, username string, email string, resume domain.Resume) error
	UpdatePassword(ctx context.Context, username string, passwordHash string) error
	Delete(ctx context.Context, username string) (bool, error)
}

type accountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository returns a document-store backed implementation.
func NewAccountRepository(db *mongo.Database) AccountRepository {
	return &accountRepository{collection: db.Collection("accounts")}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, account)
	return translateWriteError(err)
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	if err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) UpdateResume(ctx context.Context, username string, email string, resume domain.Resume) error {
	update := bson.M{"$set": bson.M{
		"email":      email,
		"resume":     resume,
		"updated_at": time.Now().UTC(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"username": username}, update)
	if err != nil {
		return translateWriteError(err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	update := bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"username": username}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, username string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
