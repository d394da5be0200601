package stores

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zapshift/zapshift-backend/internal/database"
	"github.com/zapshift/zapshift-backend/internal/models"
)

// Riders accesses the rider collection.
type Riders struct {
	coll *mongo.Collection
}

func NewRiders(db *mongo.Database) *Riders {
	return &Riders{coll: db.Collection(database.RidersCollection)}
}

// Create inserts a rider application and returns the generated id.
func (s *Riders) Create(ctx context.Context, rider *models.Rider) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, rider)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert rider: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// List returns the unfiltered rider collection.
func (s *Riders) List(ctx context.Context) ([]models.Rider, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list riders: %w", err)
	}
	defer cursor.Close(ctx)

	riders := []models.Rider{}
	if err := cursor.All(ctx, &riders); err != nil {
		return nil, fmt.Errorf("failed to decode riders: %w", err)
	}

	return riders, nil
}

// UpdateStatus sets applicationStatus on one rider and reports how many
// documents were modified.
func (s *Riders) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RiderStatus) (int64, error) {
	update := bson.M{"$set": bson.M{"applicationStatus": status}}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update rider status: %w", err)
	}
	return res.ModifiedCount, nil
}
