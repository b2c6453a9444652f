package service

import (
	"context"
	"strings"
	"time"

	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/transport"
)

const searchLimit = 50

type MealService struct {
	Repo MealRepo
	// Index is optional; without it search falls back to Repo.
	Index  MealSearcher
	Events *Events
}

func (s *MealService) Create(ctx context.Context, req transport.CreateMealRequest) (*models.Meal, error) {
	if strings.TrimSpace(req.MealName) == "" {
		return nil, validation("mealName required")
	}
	if strings.TrimSpace(req.UserEmail) == "" {
		return nil, validation("userEmail required")
	}
	if req.Price < 0 {
		return nil, validation("price must be >= 0")
	}

	m := &models.Meal{
		MealName:              strings.TrimSpace(req.MealName),
		ChefName:              req.ChefName,
		ChefID:                req.ChefID,
		FoodImage:             req.FoodImage,
		Price:                 req.Price.Float(),
		Rating:                req.Rating.Float(),
		Ingredients:           req.Ingredients,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		ChefExperience:        req.ChefExperience,
		DeliveryArea:          req.DeliveryArea,
		UserEmail:             strings.TrimSpace(req.UserEmail),
		CreatedAt:             time.Now().UTC(),
	}
	if m.Ingredients == nil {
		m.Ingredients = []string{}
	}
	if err := s.Repo.CreateMeal(ctx, m); err != nil {
		return nil, classify(err, "create meal")
	}

	s.index(ctx, m)
	s.Events.emit(ctx, mykafka.TopicMeals, mykafka.NewEvent("meal_created", m.ID, m.UserEmail, m))
	return m, nil
}

// List returns one page of meals and the total count.
func (s *MealService) List(ctx context.Context, q transport.MealQuery) (int64, []models.Meal, error) {
	meals, err := s.Repo.ListMeals(ctx, q)
	if err != nil {
		return 0, nil, classify(err, "list meals")
	}
	total, err := s.Repo.CountMeals(ctx)
	if err != nil {
		return 0, nil, classify(err, "count meals")
	}
	return total, meals, nil
}

func (s *MealService) Get(ctx context.Context, id string) (*models.Meal, error) {
	m, err := s.Repo.GetMeal(ctx, id)
	if err != nil {
		return nil, classify(err, "get meal")
	}
	return m, nil
}

func (s *MealService) ListByEmail(ctx context.Context, email string) ([]models.Meal, error) {
	meals, err := s.Repo.ListMealsByEmail(ctx, email)
	return meals, classify(err, "list meals by email")
}

func (s *MealService) Patch(ctx context.Context, id string, req transport.PatchMealRequest) (*models.Meal, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, validation("price must be >= 0")
	}
	if req.MealName != nil && strings.TrimSpace(*req.MealName) == "" {
		return nil, validation("mealName must not be empty")
	}

	m, err := s.Repo.PatchMeal(ctx, id, req)
	if err != nil {
		return nil, classify(err, "patch meal")
	}

	s.index(ctx, m)
	s.Events.emit(ctx, mykafka.TopicMeals, mykafka.NewEvent("meal_updated", m.ID, m.UserEmail, m))
	return m, nil
}

func (s *MealService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteMeal(ctx, id); err != nil {
		return classify(err, "delete meal")
	}

	if s.Index != nil {
		if err := s.Index.DeleteMeal(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("meal_unindex_failed", "meal_id", id, "error", err)
		}
	}
	s.Events.emit(ctx, mykafka.TopicMeals, mykafka.NewEvent("meal_deleted", id, "", nil))
	return nil
}

// Search serves full-text queries from the index when one is configured and
// falls back to a substring match in the store when it is absent or failing.
func (s *MealService) Search(ctx context.Context, query string) ([]models.Meal, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validation("q required")
	}

	if s.Index != nil {
		_, meals, err := s.Index.SearchMeals(ctx, query, 0, searchLimit)
		if err == nil {
			return meals, nil
		}
		logging.FromContext(ctx).Warn("meal_search_index_failed", "query", query, "error", err)
	}

	meals, err := s.Repo.SearchMeals(ctx, query, searchLimit)
	return meals, classify(err, "search meals")
}

func (s *MealService) index(ctx context.Context, m *models.Meal) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexMeal(ctx, m); err != nil {
		logging.FromContext(ctx).Warn("meal_index_failed", "meal_id", m.ID, "error", err)
	}
}
