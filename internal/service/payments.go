package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/metrics"
	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/payment"
	"github.com/localchefbazaar/backend/internal/repo"
	"github.com/localchefbazaar/backend/internal/transport"
)

type PaymentService struct {
	Repo       PaymentRepo
	Processor  payment.Processor
	Currency   string
	SiteDomain string
	Events     *Events
	Metrics    *metrics.Metrics
}

// ConfirmResult is the outcome of a payment-success callback.
type ConfirmResult struct {
	Success          bool
	TransactionID    string
	AlreadyProcessed bool
	MatchedCount     int64
	Payment          *models.Payment
}

// CreateCheckout opens a hosted checkout for one order and returns its URL.
func (s *PaymentService) CreateCheckout(ctx context.Context, req transport.CheckoutRequest) (string, error) {
	if req.Price <= 0 {
		return "", validation("price must be > 0")
	}
	if strings.TrimSpace(req.MealName) == "" {
		return "", validation("mealName required")
	}
	if strings.TrimSpace(req.UserEmail) == "" {
		return "", validation("userEmail required")
	}
	if strings.TrimSpace(req.OrderID) == "" {
		return "", validation("orderId required")
	}
	qty, err := quantity(req.Quantity)
	if err != nil {
		return "", err
	}

	sess, err := s.Processor.CreateCheckoutSession(ctx, payment.CheckoutParams{
		MealName:   req.MealName,
		UserEmail:  req.UserEmail,
		OrderID:    req.OrderID,
		MealID:     req.MealID,
		UnitAmount: MinorUnits(req.Price.Float()),
		Quantity:   qty,
		Currency:   s.Currency,
		SuccessURL: s.SiteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.SiteDomain + "/dashboard/payment-cancelled",
	})
	if err != nil {
		return "", errors.Join(ErrUpstream, err)
	}
	return sess.URL, nil
}

// Confirm records the payment of a paid checkout session exactly once and
// flags the order as paid.
func (s *PaymentService) Confirm(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, validation("session_id required")
	}

	sess, err := s.Processor.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		s.Metrics.Payment("upstream_error")
		return nil, errors.Join(ErrUpstream, err)
	}
	if !sess.Paid {
		s.Metrics.Payment("unpaid")
		return &ConfirmResult{Success: false, TransactionID: sess.TransactionID}, nil
	}

	p := &models.Payment{
		TransactionID: sess.TransactionID,
		Amount:        float64(sess.AmountTotal) / 100,
		Currency:      sess.Currency,
		PaymentStatus: models.PaymentStatusPaid,
		UserEmail:     sess.CustomerEmail,
		MealID:        sess.Metadata["mealId"],
		OrderID:       sess.Metadata["orderId"],
		PaidAt:        time.Now().UTC(),
	}

	matched, err := s.Repo.SettlePayment(ctx, p)
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			s.Metrics.Payment("duplicate")
			return &ConfirmResult{Success: true, TransactionID: p.TransactionID, AlreadyProcessed: true}, nil
		}
		return nil, classify(err, "settle payment")
	}
	if matched == 0 {
		logging.FromContext(ctx).Warn("payment_order_not_matched",
			"transaction_id", p.TransactionID, "order_id", p.OrderID)
	}

	s.Metrics.Payment("settled")
	s.Events.emit(ctx, mykafka.TopicPayments, mykafka.NewEvent("payment_settled", p.TransactionID, p.UserEmail, p))
	return &ConfirmResult{
		Success:       true,
		TransactionID: p.TransactionID,
		MatchedCount:  matched,
		Payment:       p,
	}, nil
}

// MinorUnits converts a price to cents, truncating sub-cent fractions.
func MinorUnits(price float64) int64 {
	// 12.29*100 is 1228.9999...; the epsilon keeps exact cents exact
	return int64(math.Trunc(price*100 + 1e-9))
}
