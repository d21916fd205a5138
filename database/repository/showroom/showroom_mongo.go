package showroomRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"drivehub/database"
	"drivehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no showroom matches the given id.
var ErrNotFound = errors.New("showroom not found")

// ShowroomRepository exposes read-only showroom lookups for booking joins.
type ShowroomRepository interface {
	GetByID(id string) (*models.Showroom, error)
}

// MongoShowroomRepo implements ShowroomRepository using MongoDB.
type MongoShowroomRepo struct {
	coll *mongo.Collection
}

// NewMongoShowroomRepo creates a new instance of ShowroomRepository using MongoDB.
func NewMongoShowroomRepo() ShowroomRepository {
	return &MongoShowroomRepo{coll: database.Collection("showrooms")}
}

// GetByID retrieves a showroom by its unique ID. The password credential is
// excluded from the projection.
func (r *MongoShowroomRepo) GetByID(id string) (*models.Showroom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	var showroom models.Showroom
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&showroom); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch showroom with id %s: %w", id, err)
	}
	return &showroom, nil
}
