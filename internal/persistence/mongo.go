package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/spec-kit/careerhub/internal/config"
)

// Mongo wraps access to the document store client.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongo establishes a client when a URI is provided.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	if cfg.URI == "" {
		logger.Warn("MONGO_URI not provided; skipping database connection")
		return &Mongo{}, nil
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.Database))
	return &Mongo{Client: client, Database: client.Database(cfg.Database)}, nil
}

// Close releases client resources.
func (m *Mongo) Close(ctx context.Context) {
	if m != nil && m.Client != nil {
		_ = m.Client.Disconnect(ctx)
	}
}

// Ping verifies store connectivity.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return mongo.ErrClientDisconnected
	}
	return m.Client.Ping(ctx, readpref.Primary())
}

// DatabaseHandle returns the underlying database.
func (m *Mongo) DatabaseHandle() *mongo.Database {
	if m == nil {
		return nil
	}
	return m.Database
}
