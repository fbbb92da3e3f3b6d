package sink

import (
	"context"

	"chat-dojo/domain/event"
	"chat-dojo/projection"
)

// TimelineSink adapts a projection.Timeline to the EventSink
// contract.
type TimelineSink struct {
	timeline *projection.Timeline
}

func NewTimelineSink(timeline *projection.Timeline) TimelineSink {
	return TimelineSink{timeline: timeline}
}

func (t TimelineSink) Consume(_ context.Context, e event.DomainEvent) error {
	t.timeline.Consume(e)
	return nil
}
