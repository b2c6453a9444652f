package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/repo"
)

func (r *MongoRepo) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = models.NewID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return insert(ctx, r.users(), u)
}

func (r *MongoRepo) ListUsers(ctx context.Context, offset, limit int) ([]models.User, error) {
	return findAll[models.User](ctx, r.users(), bson.M{}, paged(offset, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.users(), bson.M{"email": email})
}

func (r *MongoRepo) UpdateUserStatus(ctx context.Context, email, status string) error {
	res, err := r.users().UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}
