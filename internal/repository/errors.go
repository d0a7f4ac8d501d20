package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateKey reports a unique-index violation. The store enforces
// uniqueness at the write boundary; this error is the single source of
// truth for conflict results.
var ErrDuplicateKey = errors.New("duplicate key")

func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}
