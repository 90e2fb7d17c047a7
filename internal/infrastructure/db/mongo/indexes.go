package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every index the repositories rely on. Run once at
// startup before the server starts taking traffic: the unique indexes are
// what make duplicate email and title races safe.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := NewPostRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return NewCommentRepository(db).EnsureIndexes(ctx)
}
