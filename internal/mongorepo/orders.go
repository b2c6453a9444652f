package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localchefbazaar/backend/internal/models"
)

func (r *MongoRepo) CreateOrder(ctx context.Context, o *models.Order) error {
	if o.ID == "" {
		o.ID = models.NewID()
	}
	if o.OrderTime.IsZero() {
		o.OrderTime = time.Now().UTC()
	}
	return insert(ctx, r.orders(), o)
}

func (r *MongoRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	return r.findOrders(ctx, bson.M{})
}

func (r *MongoRepo) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return r.findOrders(ctx, bson.M{"userEmail": email})
}

func (r *MongoRepo) ListOrdersByChef(ctx context.Context, chefID string) ([]models.Order, error) {
	return r.findOrders(ctx, bson.M{"chefId": chefID})
}

func (r *MongoRepo) findOrders(ctx context.Context, filter bson.M) ([]models.Order, error) {
	return findAll[models.Order](ctx, r.orders(), filter,
		options.Find().SetSort(bson.D{{Key: "orderTime", Value: -1}}))
}

func (r *MongoRepo) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return findOne[models.Order](ctx, r.orders(), bson.M{"_id": id})
}

func (r *MongoRepo) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return updateByID(ctx, r.orders(), id, bson.M{"orderStatus": status})
}

func (r *MongoRepo) CountOrdersByStatus(ctx context.Context) (map[models.OrderStatus]int64, error) {
	cur, err := r.orders().Aggregate(ctx, bson.A{
		bson.M{"$group": bson.M{"_id": "$orderStatus", "count": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Status models.OrderStatus `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[models.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
