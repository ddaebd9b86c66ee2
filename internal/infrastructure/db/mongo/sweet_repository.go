package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

const sweetsCollection = "sweets"

const indexTimeout = 30 * time.Second

// SweetRepository implements ports.SweetRepository using MongoDB.
type SweetRepository struct {
	coll *mongo.Collection
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{coll: db.Collection(sweetsCollection)}
}

// Create inserts a new sweet document.
func (r *SweetRepository) Create(ctx context.Context, sweet *domain.Sweet) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, sweet)
	return err
}

// List returns all sweets ordered by creation time.
func (r *SweetRepository) List(ctx context.Context) ([]*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sweets := make([]*domain.Sweet, 0)
	for cursor.Next(ctx) {
		var s domain.Sweet
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		sweets = append(sweets, &s)
	}
	return sweets, cursor.Err()
}

// EnsureIndexes creates the indexes used by the listing query.
func (r *SweetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}},
	})
	return err
}
