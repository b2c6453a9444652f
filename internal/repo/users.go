package repo

import (
	"context"

	"github.com/localchefbazaar/backend/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return createIfAbsent(r.DB.WithContext(ctx), u)
}

func (r *GormRepo) ListUsers(ctx context.Context, offset, limit int) ([]models.User, error) {
	var users []models.User
	q := r.DB.WithContext(ctx).Model(&models.User{}).Order("created_at DESC")
	if err := page(q, offset, limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *GormRepo) UpdateUserStatus(ctx context.Context, email, status string) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
