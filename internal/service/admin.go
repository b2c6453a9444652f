package service

import (
	"context"

	"github.com/localchefbazaar/backend/internal/models"
)

type AdminService struct {
	Payments PaymentRepo
	Orders   OrderRepo
}

type OrderStatusCount struct {
	Pending   int64 `json:"pending"`
	Delivered int64 `json:"delivered"`
}

func (s *AdminService) TotalPayment(ctx context.Context) (float64, error) {
	total, err := s.Payments.TotalPaid(ctx)
	return total, classify(err, "total payment")
}

func (s *AdminService) OrderStatusCount(ctx context.Context) (OrderStatusCount, error) {
	counts, err := s.Orders.CountOrdersByStatus(ctx)
	if err != nil {
		return OrderStatusCount{}, classify(err, "count orders")
	}
	return OrderStatusCount{
		Pending:   counts[models.OrderPending],
		Delivered: counts[models.OrderDelivered],
	}, nil
}
