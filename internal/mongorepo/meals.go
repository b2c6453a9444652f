package mongorepo

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/transport"
)

func (r *MongoRepo) CreateMeal(ctx context.Context, m *models.Meal) error {
	if m.ID == "" {
		m.ID = models.NewID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.Ingredients == nil {
		m.Ingredients = []string{}
	}
	return insert(ctx, r.meals(), m)
}

func (r *MongoRepo) ListMeals(ctx context.Context, q transport.MealQuery) ([]models.Meal, error) {
	sort := bson.D{{Key: "createdAt", Value: -1}}
	switch q.Sort {
	case transport.SortPriceAsc:
		sort = bson.D{{Key: "price", Value: 1}}
	case transport.SortPriceDesc:
		sort = bson.D{{Key: "price", Value: -1}}
	}
	return findAll[models.Meal](ctx, r.meals(), bson.M{}, paged(q.Offset, q.Limit).SetSort(sort))
}

func (r *MongoRepo) CountMeals(ctx context.Context) (int64, error) {
	return r.meals().CountDocuments(ctx, bson.M{})
}

func (r *MongoRepo) GetMeal(ctx context.Context, id string) (*models.Meal, error) {
	return findOne[models.Meal](ctx, r.meals(), bson.M{"_id": id})
}

func (r *MongoRepo) ListMealsByEmail(ctx context.Context, email string) ([]models.Meal, error) {
	return findAll[models.Meal](ctx, r.meals(), bson.M{"userEmail": email},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoRepo) PatchMeal(ctx context.Context, id string, p transport.PatchMealRequest) (*models.Meal, error) {
	set := bson.M{}
	if p.MealName != nil {
		set["mealName"] = *p.MealName
	}
	if p.Price != nil {
		set["price"] = p.Price.Float()
	}
	if p.Rating != nil {
		set["rating"] = p.Rating.Float()
	}
	if p.Ingredients != nil {
		set["ingredients"] = *p.Ingredients
	}
	if p.EstimatedDeliveryTime != nil {
		set["estimatedDeliveryTime"] = *p.EstimatedDeliveryTime
	}
	if p.FoodImage != nil {
		set["foodImage"] = *p.FoodImage
	}
	if p.DeliveryArea != nil {
		set["deliveryArea"] = *p.DeliveryArea
	}
	if len(set) > 0 {
		if err := updateByID(ctx, r.meals(), id, set); err != nil {
			return nil, err
		}
	}
	return r.GetMeal(ctx, id)
}

func (r *MongoRepo) DeleteMeal(ctx context.Context, id string) error {
	return deleteByID(ctx, r.meals(), id)
}

func (r *MongoRepo) SearchMeals(ctx context.Context, query string, limit int) ([]models.Meal, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(query)), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"mealName": re},
		bson.M{"chefName": re},
	}}
	return findAll[models.Meal](ctx, r.meals(), filter, paged(0, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}
