package seatRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"seatadvisor/database"
	"seatadvisor/models"
)

// MongoSeatRepo implements SeatRepository using MongoDB.
type MongoSeatRepo struct {
	coll *mongo.Collection
}

// NewMongoSeatRepo creates a new instance of SeatRepository using MongoDB.
func NewMongoSeatRepo() *MongoSeatRepo {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("seats")
	repo := &MongoSeatRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSeatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "layer", Value: 1},
			{Key: "side", Value: 1},
			{Key: "position", Value: 1},
		}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_available", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves every seat ordered by type, layer, side and position.
func (r *MongoSeatRepo) GetAll() ([]models.Seat, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "seat_type", Value: 1},
		{Key: "layer", Value: 1},
		{Key: "side", Value: 1},
		{Key: "position", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seats: %w", err)
	}
	defer cursor.Close(ctx)

	var seats []models.Seat
	if err := cursor.All(ctx, &seats); err != nil {
		return nil, fmt.Errorf("failed to decode seats: %w", err)
	}
	return seats, nil
}

// GetByID retrieves a seat by its numeric ID.
func (r *MongoSeatRepo) GetByID(id int) (*models.Seat, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var seat models.Seat
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&seat)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seat %d: %w", id, err)
	}
	return &seat, nil
}

// SetAvailability toggles a seat's availability flag.
func (r *MongoSeatRepo) SetAvailability(id int, available bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"is_available": available}},
	)
	if err != nil {
		return fmt.Errorf("failed to update seat %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("seat with id %d not found", id)
	}
	return nil
}

// EnsureSeeded inserts the venue layout when the collection is empty.
func (r *MongoSeatRepo) EnsureSeeded() error {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count seats: %w", err)
	}
	if count > 0 {
		return nil
	}

	seats := GenerateVenueSeats()
	docs := make([]interface{}, 0, len(seats))
	for _, s := range seats {
		docs = append(docs, s)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed seats: %w", err)
	}
	return nil
}
