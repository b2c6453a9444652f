package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/localchefbazaar/backend/internal/models"
)

// SettlePayment inserts p, claiming its transaction id, then flags the order
// as paid. A duplicate transaction id returns repo.ErrConflict before the
// order is touched.
func (r *MongoRepo) SettlePayment(ctx context.Context, p *models.Payment) (int64, error) {
	if p.ID == "" {
		p.ID = models.NewID()
	}
	if err := insert(ctx, r.payments(), p); err != nil {
		return 0, err
	}
	res, err := r.orders().UpdateByID(ctx, p.OrderID,
		bson.M{"$set": bson.M{"paymentStatus": models.PaymentStatusPaid}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoRepo) GetPaymentByTransaction(ctx context.Context, transactionID string) (*models.Payment, error) {
	return findOne[models.Payment](ctx, r.payments(), bson.M{"transactionId": transactionID})
}

func (r *MongoRepo) TotalPaid(ctx context.Context) (float64, error) {
	cur, err := r.payments().Aggregate(ctx, bson.A{
		bson.M{"$match": bson.M{"paymentStatus": models.PaymentStatusPaid}},
		bson.M{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}},
	})
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
