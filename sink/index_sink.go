package sink

import (
	"context"
	"log/slog"

	"chat-dojo/domain/event"
	"chat-dojo/search"
)

// IndexSink feeds the full-text index: new messages become findable,
// deleted ones stop being findable.
type IndexSink struct {
	index *search.Index
	log   *slog.Logger
}

func NewIndexSink(index *search.Index, log *slog.Logger) IndexSink {
	return IndexSink{index: index, log: log}
}

func (s IndexSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageSent:
		return s.index.Store(search.Entry{
			ID:      evt.ID,
			Chat:    evt.Chat,
			Sender:  evt.Sender,
			Content: evt.Content,
			At:      evt.At,
		})
	case event.MessageDeleted:
		return s.index.Remove(evt.MessageID)
	default:
		return nil
	}
}
