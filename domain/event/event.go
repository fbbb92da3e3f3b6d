package event

import (
	"time"

	"github.com/google/uuid"

	"chat-dojo/domain"
)

type DomainEvent interface {
	ChatID() domain.ChatID
}

// MessageSent is emitted once a message has been accepted by the
// aggregate and persisted. Lang is the ISO 639-1 code detected from
// the content, empty when detection was inconclusive.
type MessageSent struct {
	ID      uuid.UUID
	Chat    int
	Sender  string
	Kind    string // "text" or the media MIME type
	Content string
	Lang    string
	At      time.Time
}

func (m MessageSent) ChatID() domain.ChatID {
	return domain.ChatID(m.Chat)
}

// UserMentioned is emitted per mentioned member, after MessageSent.
type UserMentioned struct {
	MessageID uuid.UUID
	Chat      int
	Sender    string
	Mentioned string
	At        time.Time
}

func (m UserMentioned) ChatID() domain.ChatID {
	return domain.ChatID(m.Chat)
}

// MessageDeleted marks a soft delete; the record stays in history.
// SentAt is the original send time, needed to address the stored
// record; At is when the delete happened.
type MessageDeleted struct {
	MessageID uuid.UUID
	Chat      int
	Sender    string
	SentAt    time.Time
	At        time.Time
}

func (m MessageDeleted) ChatID() domain.ChatID {
	return domain.ChatID(m.Chat)
}
