package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/transport"
)

type OrderService struct {
	Repo   OrderRepo
	Events *Events
}

func (s *OrderService) Create(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if strings.TrimSpace(req.MealID) == "" {
		return nil, validation("mealId required")
	}
	if strings.TrimSpace(req.UserEmail) == "" {
		return nil, validation("userEmail required")
	}
	if req.Price < 0 {
		return nil, validation("price must be >= 0")
	}
	qty, err := quantity(req.Quantity)
	if err != nil {
		return nil, err
	}

	o := &models.Order{
		MealID:      req.MealID,
		MealName:    req.MealName,
		Price:       req.Price.Float(),
		Quantity:    int(qty),
		ChefID:      req.ChefID,
		UserEmail:   strings.TrimSpace(req.UserEmail),
		UserAddress: req.UserAddress,
		OrderStatus: models.OrderPending,
		OrderTime:   time.Now().UTC(),
	}
	if err := s.Repo.CreateOrder(ctx, o); err != nil {
		return nil, classify(err, "create order")
	}

	s.Events.emit(ctx, mykafka.TopicOrders, mykafka.NewEvent("order_created", o.ID, o.UserEmail, o))
	return o, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.Repo.ListOrders(ctx)
	return orders, classify(err, "list orders")
}

func (s *OrderService) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	orders, err := s.Repo.ListOrdersByEmail(ctx, email)
	return orders, classify(err, "list orders by email")
}

func (s *OrderService) ListByChef(ctx context.Context, chefID string) ([]models.Order, error) {
	orders, err := s.Repo.ListOrdersByChef(ctx, chefID)
	return orders, classify(err, "list orders by chef")
}

func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	st, ok := models.ParseOrderStatus(status)
	if !ok {
		return nil, validation("unknown orderStatus %q", status)
	}
	if err := s.Repo.UpdateOrderStatus(ctx, id, st); err != nil {
		return nil, classify(err, "update order status")
	}
	o, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, classify(err, "get order")
	}

	s.Events.emit(ctx, mykafka.TopicOrders, mykafka.NewEvent("order_status_changed", o.ID, o.UserEmail, o))
	return o, nil
}

// quantity defaults a missing quantity to 1 and rejects fractions.
func quantity(a models.Amount) (int64, error) {
	q := a.Float()
	if q == 0 {
		return 1, nil
	}
	if q < 0 || q != math.Trunc(q) {
		return 0, validation("quantity must be a positive whole number")
	}
	return int64(q), nil
}
