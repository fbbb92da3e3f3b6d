package domain

import (
	"github.com/google/uuid"
)

type Command interface {
	ChatID() ChatID
}

type SendTextCommand struct {
	Chat   int
	Sender uuid.UUID
	Body   string
}

func (c SendTextCommand) ChatID() ChatID {
	return ChatID(c.Chat)
}

type SendMediaCommand struct {
	Chat    int
	Sender  uuid.UUID
	Path    string
	Caption string
}

func (c SendMediaCommand) ChatID() ChatID {
	return ChatID(c.Chat)
}

type DeleteMessageCommand struct {
	Chat      int
	Sender    uuid.UUID
	MessageID uuid.UUID
}

func (c DeleteMessageCommand) ChatID() ChatID {
	return ChatID(c.Chat)
}

type TimelineCommand struct {
	Chat   int
	Cursor *string
}

func (c TimelineCommand) ChatID() ChatID {
	return ChatID(c.Chat)
}
