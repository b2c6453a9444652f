package repo

import (
	"context"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/transport"
)

func (r *GormRepo) CreateReview(ctx context.Context, rv *models.Review) error {
	return r.DB.WithContext(ctx).Create(rv).Error
}

// ListReviews returns the reviews of one meal, or all reviews when mealID is empty.
func (r *GormRepo) ListReviews(ctx context.Context, mealID string) ([]models.Review, error) {
	var reviews []models.Review
	tx := r.DB.WithContext(ctx).Order("date DESC")
	if mealID != "" {
		tx = tx.Where("meal_id = ?", mealID)
	}
	if err := tx.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormRepo) ListReviewsByEmail(ctx context.Context, email string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.DB.WithContext(ctx).
		Where("user_email = ?", email).
		Order("date DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormRepo) PatchReview(ctx context.Context, id string, p transport.PatchReviewRequest) (*models.Review, error) {
	var rv models.Review
	if err := r.DB.WithContext(ctx).First(&rv, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	updates := map[string]any{}
	if p.Review != nil {
		rv.Review = *p.Review
		updates["review"] = rv.Review
	}
	if p.Ratings != nil {
		rv.Ratings = p.Ratings.Float()
		updates["ratings"] = rv.Ratings
	}
	if len(updates) == 0 {
		return &rv, nil
	}
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *GormRepo) DeleteReview(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
