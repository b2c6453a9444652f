package repo

import (
	"context"

	"github.com/localchefbazaar/backend/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, o *models.Order) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	return r.findOrders(ctx, "", nil)
}

func (r *GormRepo) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return r.findOrders(ctx, "user_email = ?", email)
}

func (r *GormRepo) ListOrdersByChef(ctx context.Context, chefID string) ([]models.Order, error) {
	return r.findOrders(ctx, "chef_id = ?", chefID)
}

func (r *GormRepo) findOrders(ctx context.Context, where string, arg any) ([]models.Order, error) {
	var orders []models.Order
	tx := r.DB.WithContext(ctx).Order("order_time DESC")
	if where != "" {
		tx = tx.Where(where, arg)
	}
	if err := tx.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountOrdersByStatus groups every order by its status.
func (r *GormRepo) CountOrdersByStatus(ctx context.Context) (map[models.OrderStatus]int64, error) {
	var rows []struct {
		OrderStatus models.OrderStatus
		Count       int64
	}
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("order_status, COUNT(*) AS count").
		Group("order_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[models.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.OrderStatus] = row.Count
	}
	return out, nil
}
