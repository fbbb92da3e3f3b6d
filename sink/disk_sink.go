package sink

import (
	"context"
	"fmt"
	"log/slog"

	"chat-dojo/domain/event"
	"chat-dojo/repositories"
)

// DiskSink persists accepted messages and mirrors soft deletes to the
// store.
type DiskSink struct {
	repository repositories.IMessageRepository
	log        *slog.Logger
}

func NewDiskSink(repository repositories.IMessageRepository, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, log: log}
}

func (d DiskSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageSent:
		return d.repository.StoreMessage(toDiskMessage(evt))
	case event.MessageDeleted:
		return d.repository.MarkDeleted(evt.Chat, evt.MessageID, evt.SentAt)
	default:
		d.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
		return nil
	}
}

func toDiskMessage(evt event.MessageSent) repositories.DiskMessage {
	return repositories.DiskMessage{
		ID:      evt.ID,
		Chat:    evt.Chat,
		Sender:  evt.Sender,
		Kind:    evt.Kind,
		Content: evt.Content,
		Lang:    evt.Lang,
		At:      evt.At,
	}
}
