package stores

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zapshift/zapshift-backend/internal/database"
	"github.com/zapshift/zapshift-backend/internal/models"
)

// Parcels accesses the parcel collection.
type Parcels struct {
	coll *mongo.Collection
}

func NewParcels(db *mongo.Database) *Parcels {
	return &Parcels{coll: db.Collection(database.ParcelsCollection)}
}

// List returns all parcels, or only those whose senderEmail matches when a
// filter email is given. No pagination, store-default order.
func (s *Parcels) List(ctx context.Context, senderEmail string) ([]models.Parcel, error) {
	filter := bson.M{}
	if senderEmail != "" {
		filter["senderEmail"] = senderEmail
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}
	defer cursor.Close(ctx)

	parcels := []models.Parcel{}
	if err := cursor.All(ctx, &parcels); err != nil {
		return nil, fmt.Errorf("failed to decode parcels: %w", err)
	}

	return parcels, nil
}

// Get fetches one parcel by id. Returns ErrNotFound when absent.
func (s *Parcels) Get(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error) {
	var parcel models.Parcel
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&parcel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parcel: %w", err)
	}
	return &parcel, nil
}

// Create inserts a parcel and returns the generated id.
func (s *Parcels) Create(ctx context.Context, parcel *models.Parcel) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, parcel)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert parcel: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// Delete removes at most one parcel and reports how many were deleted.
func (s *Parcels) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete parcel: %w", err)
	}
	return res.DeletedCount, nil
}

// MarkPaid stamps a parcel paid with its tracking id and reports how many
// documents were modified.
func (s *Parcels) MarkPaid(ctx context.Context, id primitive.ObjectID, trackingID string) (int64, error) {
	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentStatusPaid,
		"trackingId":    trackingID,
	}}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark parcel paid: %w", err)
	}
	return res.ModifiedCount, nil
}
