//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"chat-dojo/domain/event"
)

// EventSink consumes domain events after the message service has
// committed them. Sinks must tolerate events they do not understand.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}
