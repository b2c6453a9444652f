package mykafka

import "time"

const (
	TopicMeals    = "meal_events"
	TopicOrders   = "order_events"
	TopicPayments = "payment_events"
	TopicUsers    = "user_events"
)

// Event is the envelope written to every topic.
type Event struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	UserEmail  string    `json:"userEmail,omitempty"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewEvent(typ, id, email string, data any) Event {
	return Event{Type: typ, ID: id, UserEmail: email, Data: data, OccurredAt: time.Now().UTC()}
}
