package service

import (
	"context"

	"github.com/localchefbazaar/backend/internal/logging"
	"github.com/localchefbazaar/backend/internal/metrics"
	"github.com/localchefbazaar/backend/internal/mykafka"
)

// Events publishes domain events. Failures are logged and counted, never
// returned: the write that produced the event has already committed.
type Events struct {
	Pub     mykafka.Publisher
	Metrics *metrics.Metrics
}

func (e *Events) emit(ctx context.Context, topic string, ev mykafka.Event) {
	if e == nil || e.Pub == nil {
		return
	}
	err := e.Pub.PublishEvent(ctx, topic, ev.ID, ev)
	e.Metrics.Event(topic, err)
	if err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed",
			"topic", topic, "type", ev.Type, "id", ev.ID, "error", err)
	}
}
