package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the stores rely on: unique email for
// case-insensitive registration (emails are stored lowercased) and the
// owner+order compound used by every list.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	db.log.Debug("ensuring indexes")

	_, err := db.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}

	_, err = db.tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "order", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create tasks order index: %w", err)
	}

	db.log.Debug("indexes ready")
	return nil
}
