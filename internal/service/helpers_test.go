package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/localchefbazaar/backend/internal/db"
	"github.com/localchefbazaar/backend/internal/metrics"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/payment"
	"github.com/localchefbazaar/backend/internal/repo"
)

func newTestStore(t *testing.T) *repo.GormRepo {
	t.Helper()
	gdb, err := db.Open(context.Background(), "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &repo.GormRepo{DB: gdb}
}

type published struct {
	Topic string
	Key   string
	Event mykafka.Event
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	ev, _ := event.(mykafka.Event)
	p.events = append(p.events, published{Topic: topic, Key: key, Event: ev})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types(topic string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		if e.Topic == topic {
			out = append(out, e.Event.Type)
		}
	}
	return out
}

func newTestEvents() (*Events, *recordingPublisher) {
	pub := &recordingPublisher{}
	return &Events{Pub: pub, Metrics: metrics.New()}, pub
}

type fakeProcessor struct {
	mu       sync.Mutex
	sessions map[string]*payment.CheckoutSession
	created  []payment.CheckoutParams
	err      error
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{sessions: map[string]*payment.CheckoutSession{}}
}

func (f *fakeProcessor) CreateCheckoutSession(_ context.Context, p payment.CheckoutParams) (*payment.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, p)
	id := "cs_" + uuid.NewString()
	return &payment.CheckoutSession{ID: id, URL: "https://checkout.example.com/" + id}, nil
}

func (f *fakeProcessor) GetCheckoutSession(_ context.Context, id string) (*payment.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	sess, ok := f.sessions[id]
	if !ok {
		return nil, payment.ErrUnavailable
	}
	return sess, nil
}

func (f *fakeProcessor) addPaid(id, txID, orderID string, amountTotal int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[id] = &payment.CheckoutSession{
		ID:            id,
		Paid:          true,
		TransactionID: txID,
		AmountTotal:   amountTotal,
		Currency:      "usd",
		CustomerEmail: "buyer@x.io",
		Metadata:      map[string]string{"orderId": orderID, "mealId": "meal-1", "mealName": "Dal"},
	}
}
