package repo

import (
	"context"
	"strings"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/transport"
)

func (r *GormRepo) CreateMeal(ctx context.Context, m *models.Meal) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *GormRepo) ListMeals(ctx context.Context, q transport.MealQuery) ([]models.Meal, error) {
	var meals []models.Meal
	tx := r.DB.WithContext(ctx).Model(&models.Meal{})
	switch q.Sort {
	case transport.SortPriceAsc:
		tx = tx.Order("price ASC")
	case transport.SortPriceDesc:
		tx = tx.Order("price DESC")
	default:
		tx = tx.Order("created_at DESC")
	}
	if err := page(tx, q.Offset, q.Limit).Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *GormRepo) CountMeals(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Meal{}).Count(&n).Error
	return n, err
}

func (r *GormRepo) GetMeal(ctx context.Context, id string) (*models.Meal, error) {
	var m models.Meal
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *GormRepo) ListMealsByEmail(ctx context.Context, email string) ([]models.Meal, error) {
	var meals []models.Meal
	if err := r.DB.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// PatchMeal applies the non-nil fields of p and returns the stored meal.
func (r *GormRepo) PatchMeal(ctx context.Context, id string, p transport.PatchMealRequest) (*models.Meal, error) {
	m, err := r.GetMeal(ctx, id)
	if err != nil {
		return nil, err
	}

	var cols []string
	if p.MealName != nil {
		m.MealName = *p.MealName
		cols = append(cols, "meal_name")
	}
	if p.Price != nil {
		m.Price = p.Price.Float()
		cols = append(cols, "price")
	}
	if p.Rating != nil {
		m.Rating = p.Rating.Float()
		cols = append(cols, "rating")
	}
	if p.Ingredients != nil {
		m.Ingredients = *p.Ingredients
		cols = append(cols, "ingredients")
	}
	if p.EstimatedDeliveryTime != nil {
		m.EstimatedDeliveryTime = *p.EstimatedDeliveryTime
		cols = append(cols, "estimated_delivery_time")
	}
	if p.FoodImage != nil {
		m.FoodImage = *p.FoodImage
		cols = append(cols, "food_image")
	}
	if p.DeliveryArea != nil {
		m.DeliveryArea = *p.DeliveryArea
		cols = append(cols, "delivery_area")
	}
	if len(cols) == 0 {
		return m, nil
	}

	// struct updates go through the json serializer for ingredients
	if err := r.DB.WithContext(ctx).Model(m).Select(cols).Updates(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *GormRepo) DeleteMeal(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Meal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchMeals is a case-insensitive substring match over meal and chef names.
func (r *GormRepo) SearchMeals(ctx context.Context, query string, limit int) ([]models.Meal, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var meals []models.Meal
	tx := r.DB.WithContext(ctx).
		Where("LOWER(meal_name) LIKE ? OR LOWER(chef_name) LIKE ?", like, like).
		Order("created_at DESC")
	if err := page(tx, 0, limit).Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
