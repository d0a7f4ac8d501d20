package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates the unique indexes the registry's conflict handling
// relies on. Uniqueness is enforced here, at the write boundary, never by
// read-then-write in application code.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	unique := options.Index().SetUnique(true)

	specs := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{
			collection: "accounts",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			},
		},
		{
			collection: "companies",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "handle", Value: 1}}, Options: unique},
			},
		},
		{
			collection: "founders",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "company_handle", Value: 1}}, Options: unique},
			},
		},
		{
			collection: "recruiters",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "username", Value: 1}, {Key: "company_handle", Value: 1}}, Options: unique},
			},
		},
		{
			collection: "opportunities",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "company_handle", Value: 1}}},
			},
		},
		{
			collection: "applications",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "opportunity_id", Value: 1}}},
				{Keys: bson.D{{Key: "applicant_email", Value: 1}}},
			},
		},
	}

	for _, spec := range specs {
		if _, err := db.Collection(spec.collection).Indexes().CreateMany(ctx, spec.models); err != nil {
			return err
		}
		logger.Debug("ensured indexes", zap.String("collection", spec.collection))
	}

	logger.Info("store indexes ensured")
	return nil
}
