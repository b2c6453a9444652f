package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/repo"
)

// MongoRepo stores every entity in its own collection, named like the SQL tables.
type MongoRepo struct {
	DB *mongo.Database
}

func (r *MongoRepo) users() *mongo.Collection      { return r.DB.Collection(models.User{}.TableName()) }
func (r *MongoRepo) requests() *mongo.Collection   { return r.DB.Collection(models.RoleRequest{}.TableName()) }
func (r *MongoRepo) meals() *mongo.Collection      { return r.DB.Collection(models.Meal{}.TableName()) }
func (r *MongoRepo) orders() *mongo.Collection     { return r.DB.Collection(models.Order{}.TableName()) }
func (r *MongoRepo) payments() *mongo.Collection   { return r.DB.Collection(models.Payment{}.TableName()) }
func (r *MongoRepo) reviews() *mongo.Collection    { return r.DB.Collection(models.Review{}.TableName()) }
func (r *MongoRepo) favourites() *mongo.Collection { return r.DB.Collection(models.Favourite{}.TableName()) }

func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.DB.Client().Ping(ctx, nil)
}

// EnsureIndexes creates the unique indexes the conditional inserts rely on.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	specs := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{r.users(), mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_users_email"),
		}},
		{r.requests(), mongo.IndexModel{
			Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "requestType", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("idx_role_request_pending").
				SetPartialFilterExpression(bson.D{{Key: "requestStatus", Value: string(models.RequestPending)}}),
		}},
		{r.payments(), mongo.IndexModel{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_payments_transaction_id"),
		}},
		{r.favourites(), mongo.IndexModel{
			Keys:    bson.D{{Key: "mealId", Value: 1}, {Key: "userEmail", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_favourite_meal_user"),
		}},
		{r.meals(), mongo.IndexModel{Keys: bson.D{{Key: "userEmail", Value: 1}}}},
		{r.orders(), mongo.IndexModel{Keys: bson.D{{Key: "userEmail", Value: 1}}}},
		{r.orders(), mongo.IndexModel{Keys: bson.D{{Key: "chefId", Value: 1}}}},
		{r.reviews(), mongo.IndexModel{Keys: bson.D{{Key: "mealId", Value: 1}}}},
	}
	for _, s := range specs {
		if _, err := s.coll.Indexes().CreateOne(ctx, s.model); err != nil {
			return fmt.Errorf("create index on %s: %w", s.coll.Name(), err)
		}
	}
	return nil
}

func insert(ctx context.Context, coll *mongo.Collection, doc any) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repo.ErrConflict
		}
		return err
	}
	return nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var v T
	if err := coll.FindOne(ctx, filter).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, id string, set bson.M) error {
	res, err := coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func paged(offset, limit int) *options.FindOptions {
	o := options.Find()
	if offset > 0 {
		o.SetSkip(int64(offset))
	}
	if limit > 0 {
		o.SetLimit(int64(limit))
	}
	return o
}
