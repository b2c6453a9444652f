package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/localchefbazaar/backend/internal/models"
)

// SettlePayment claims p.TransactionID and marks the order paid in one
// transaction. It returns ErrConflict when the transaction was already
// recorded, otherwise the number of orders matched by p.OrderID.
func (r *GormRepo) SettlePayment(ctx context.Context, p *models.Payment) (int64, error) {
	var matched int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createIfAbsent(tx, p); err != nil {
			return err
		}
		res := tx.Model(&models.Order{}).
			Where("id = ?", p.OrderID).
			Update("payment_status", models.PaymentStatusPaid)
		if res.Error != nil {
			return res.Error
		}
		matched = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return matched, nil
}

func (r *GormRepo) GetPaymentByTransaction(ctx context.Context, transactionID string) (*models.Payment, error) {
	var p models.Payment
	if err := r.DB.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *GormRepo) TotalPaid(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&models.Payment{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
