// Package projection builds local timelines from observed events.
// Handles ordering and the unread badge for one owner.
// Does not emit events or interact with UI directly.
package projection

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"chat-dojo/domain/event"
)

// Entry is one rendered line of an owner's timeline.
type Entry struct {
	ID      uuid.UUID
	Sender  string
	Content string
	Lang    string
	At      time.Time
}

// Timeline holds a simple local timeline for one member: the active
// messages they can see plus their unread badge.
type Timeline struct {
	Owner    string
	Messages []Entry
	Unread   int
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{Owner: owner}
}

func (t *Timeline) Consume(e event.DomainEvent) {
	switch evt := e.(type) {
	case event.MessageSent:
		t.Messages = append(t.Messages, fromEvent(evt))
		if evt.Sender != t.Owner {
			t.Unread++
		}
	case event.MessageDeleted:
		// Soft-deleted messages disappear from the timeline view;
		// the store keeps the record.
		t.Messages = lo.Filter(t.Messages, func(m Entry, _ int) bool {
			return m.ID != evt.MessageID
		})
	}
}

// MarkRead clears the badge, never below zero.
func (t *Timeline) MarkRead() {
	t.Unread = 0
}

func fromEvent(evt event.MessageSent) Entry {
	return Entry{
		ID:      evt.ID,
		Sender:  evt.Sender,
		Content: evt.Content,
		Lang:    evt.Lang,
		At:      evt.At,
	}
}
