package stores

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zapshift/zapshift-backend/internal/database"
	"github.com/zapshift/zapshift-backend/internal/models"
)

// Payments accesses the payment collection.
type Payments struct {
	coll *mongo.Collection
}

func NewPayments(db *mongo.Database) *Payments {
	return &Payments{coll: db.Collection(database.PaymentsCollection)}
}

// Insert records a payment. The collection carries a unique index on
// transactionId, so inserting the same transaction twice returns
// ErrDuplicateTransaction instead of a second document.
func (s *Payments) Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, payment)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicateTransaction
	}
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert payment: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// FindByTransactionID returns the payment recorded for a transaction, or
// ErrNotFound.
func (s *Payments) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := s.coll.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return &payment, nil
}

// ListByEmail returns a customer's payments, newest first.
func (s *Payments) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, bson.M{"customerEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}

	return payments, nil
}
