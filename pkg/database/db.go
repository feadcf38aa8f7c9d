// Package database owns the MongoDB connection lifecycle and the indexes the
// stores rely on. Callers construct the handle explicitly at startup and
// disconnect it on shutdown; nothing in this package is a process global.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the repositories.
const (
	ColAccounts = "accounts"
	ColProducts = "products"
	ColOrders   = "orders"
	ColReviews  = "reviews"
	ColLogs     = "logs"
)

// Connect opens a MongoDB client, verifies the connection, and returns the
// client plus the named database handle. The caller owns the client and must
// Disconnect it on shutdown.
func Connect(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("database: ping: %w", err)
	}

	return client, client.Database(name), nil
}

// EnsureIndexes creates the indexes the stores rely on. Account email
// uniqueness lives here, in the store, rather than in handler code: the
// pre-insert lookup gives a friendly error, but this index is what stops
// concurrent registrations with the same email from both landing.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	accounts := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(ColAccounts).Indexes().CreateMany(ctx, accounts); err != nil {
		return fmt.Errorf("database: accounts indexes: %w", err)
	}

	listings := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	for _, col := range []string{ColOrders, ColReviews} {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, listings); err != nil {
			return fmt.Errorf("database: %s indexes: %w", col, err)
		}
	}
	return nil
}
