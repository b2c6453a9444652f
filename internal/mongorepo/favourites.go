package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localchefbazaar/backend/internal/models"
)

func (r *MongoRepo) CreateFavourite(ctx context.Context, f *models.Favourite) error {
	if f.ID == "" {
		f.ID = models.NewID()
	}
	if f.AddedDate.IsZero() {
		f.AddedDate = time.Now().UTC()
	}
	return insert(ctx, r.favourites(), f)
}

func (r *MongoRepo) ListFavourites(ctx context.Context, email string) ([]models.Favourite, error) {
	return findAll[models.Favourite](ctx, r.favourites(), bson.M{"userEmail": email},
		options.Find().SetSort(bson.D{{Key: "added_date", Value: -1}}))
}

func (r *MongoRepo) DeleteFavourite(ctx context.Context, id string) error {
	return deleteByID(ctx, r.favourites(), id)
}
