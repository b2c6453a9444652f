package repo

import (
	"context"

	"github.com/localchefbazaar/backend/internal/models"
)

// CreateFavourite returns ErrConflict when the user already saved the meal.
func (r *GormRepo) CreateFavourite(ctx context.Context, f *models.Favourite) error {
	return createIfAbsent(r.DB.WithContext(ctx), f)
}

func (r *GormRepo) ListFavourites(ctx context.Context, email string) ([]models.Favourite, error) {
	var favs []models.Favourite
	if err := r.DB.WithContext(ctx).
		Where("user_email = ?", email).
		Order("added_date DESC").
		Find(&favs).Error; err != nil {
		return nil, err
	}
	return favs, nil
}

func (r *GormRepo) DeleteFavourite(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Favourite{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
