package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/zapshift/zapshift-backend/internal/config"
)

// Collection names used by the service.
const (
	ParcelsCollection  = "parcels"
	PaymentsCollection = "payments"
	UsersCollection    = "users"
	RidersCollection   = "riders"
)

// Connect opens the process-wide document store client and verifies the
// connection with a ping. The client is held for the process lifetime and
// must be closed with Disconnect on shutdown.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	uri := fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		cfg.DBUser,
		cfg.DBPass,
		cfg.DBHost,
	)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the service relies on. The unique index
// on payments.transactionId turns the duplicate-verification race into a
// duplicate-key error instead of a second Payment document.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(PaymentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create payments index: %w", err)
	}

	return nil
}
