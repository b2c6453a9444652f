package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/transport"
)

func (r *MongoRepo) CreateReview(ctx context.Context, rv *models.Review) error {
	if rv.ID == "" {
		rv.ID = models.NewID()
	}
	if rv.Date.IsZero() {
		rv.Date = time.Now().UTC()
	}
	return insert(ctx, r.reviews(), rv)
}

func (r *MongoRepo) ListReviews(ctx context.Context, mealID string) ([]models.Review, error) {
	filter := bson.M{}
	if mealID != "" {
		filter["mealId"] = mealID
	}
	return findAll[models.Review](ctx, r.reviews(), filter, byDateDesc())
}

func (r *MongoRepo) ListReviewsByEmail(ctx context.Context, email string) ([]models.Review, error) {
	return findAll[models.Review](ctx, r.reviews(), bson.M{"userEmail": email}, byDateDesc())
}

func (r *MongoRepo) PatchReview(ctx context.Context, id string, p transport.PatchReviewRequest) (*models.Review, error) {
	set := bson.M{}
	if p.Review != nil {
		set["review"] = *p.Review
	}
	if p.Ratings != nil {
		set["ratings"] = p.Ratings.Float()
	}
	if len(set) > 0 {
		if err := updateByID(ctx, r.reviews(), id, set); err != nil {
			return nil, err
		}
	}
	return findOne[models.Review](ctx, r.reviews(), bson.M{"_id": id})
}

func (r *MongoRepo) DeleteReview(ctx context.Context, id string) error {
	return deleteByID(ctx, r.reviews(), id)
}

func byDateDesc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
}
