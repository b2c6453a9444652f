package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/repo"
)

func (r *MongoRepo) CreateRoleRequest(ctx context.Context, req *models.RoleRequest) error {
	if req.ID == "" {
		req.ID = models.NewID()
	}
	if req.RequestTime.IsZero() {
		req.RequestTime = time.Now().UTC()
	}
	return insert(ctx, r.requests(), req)
}

func (r *MongoRepo) ListRoleRequests(ctx context.Context, status models.RequestStatus) ([]models.RoleRequest, error) {
	return findAll[models.RoleRequest](ctx, r.requests(),
		bson.M{"requestStatus": status},
		options.Find().SetSort(bson.D{{Key: "requestTime", Value: 1}}))
}

func (r *MongoRepo) HasRoleRequest(ctx context.Context, email string, requestType models.Role, status models.RequestStatus) (bool, error) {
	n, err := r.requests().CountDocuments(ctx,
		bson.M{"userEmail": email, "requestType": requestType, "requestStatus": status},
		options.Count().SetLimit(1))
	return n > 0, err
}

// ResolveRoleRequest updates the pending request, then applies grant to the
// user. The two writes are not atomic; a missing user surfaces as
// repo.ErrNotFound after the request was already resolved.
func (r *MongoRepo) ResolveRoleRequest(ctx context.Context, email string, requestType models.Role, status models.RequestStatus, grant *repo.RoleGrant) (int64, error) {
	res, err := r.requests().UpdateOne(ctx,
		bson.M{"userEmail": email, "requestType": requestType, "requestStatus": models.RequestPending},
		bson.M{"$set": bson.M{"requestStatus": status}})
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 || grant == nil {
		return res.MatchedCount, nil
	}

	set := bson.M{"role": grant.Role}
	if grant.ChefID != "" {
		set["chefId"] = grant.ChefID
	}
	ures, err := r.users().UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	if ures.MatchedCount == 0 {
		return 0, repo.ErrNotFound
	}
	return res.MatchedCount, nil
}

func (r *MongoRepo) DeleteRoleRequests(ctx context.Context, email string, requestType models.Role) (int64, error) {
	filter := bson.M{"userEmail": email}
	if requestType != "" {
		filter["requestType"] = requestType
	}
	res, err := r.requests().DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
