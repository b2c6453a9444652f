package payment

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("payment processor unavailable")

// CheckoutParams describes one hosted checkout for a single order.
type CheckoutParams struct {
	MealName   string
	UserEmail  string
	OrderID    string
	MealID     string
	UnitAmount int64 // minor units
	Quantity   int64
	Currency   string
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	ID            string
	URL           string
	Paid          bool
	TransactionID string
	AmountTotal   int64 // minor units
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

type Processor interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error)
}
