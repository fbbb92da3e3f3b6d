// Package domain contains core concepts of the chat system.
// This file defines the Chat aggregate: a fixed member set, an
// ordered message list, and per-member unread counters.
package domain

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"chat-dojo/errors"
)

type ChatID int

type Chat struct {
	ID       ChatID
	Title    string
	members  map[uuid.UUID]User
	messages []Message
	unread   map[uuid.UUID]int
	muted    map[uuid.UUID]struct{}
}

// NewChat creates a chat with a fixed member set. Unread counters
// start at zero for every member.
func NewChat(id ChatID, title string, members ...User) *Chat {
	c := &Chat{
		ID:      id,
		Title:   title,
		members: make(map[uuid.UUID]User, len(members)),
		unread:  make(map[uuid.UUID]int, len(members)),
		muted:   make(map[uuid.UUID]struct{}),
	}
	for _, m := range members {
		c.members[m.ID] = m
		c.unread[m.ID] = 0
	}
	return c
}

func (c *Chat) IsMember(userID uuid.UUID) bool {
	_, ok := c.members[userID]
	return ok
}

// Members returns the member list in no particular order.
func (c *Chat) Members() []User {
	return lo.Values(c.members)
}

// Member resolves a member by ID.
func (c *Chat) Member(userID uuid.UUID) (User, bool) {
	u, ok := c.members[userID]
	return u, ok
}

// Append adds a message posted by a member.
func (c *Chat) Append(msg Message) error {
	if !c.IsMember(msg.SenderID()) {
		return errors.ErrNotAMember
	}
	c.messages = append(c.messages, msg)
	return nil
}

// Find returns the live message with the given ID.
func (c *Chat) Find(msgID uuid.UUID) (Message, bool) {
	msg, ok := lo.Find(c.messages, func(m Message) bool {
		return m.ID() == msgID
	})
	return msg, ok
}

// ActiveMessages excludes soft-deleted entries; History keeps them.
func (c *Chat) ActiveMessages() []Message {
	return lo.Filter(c.messages, func(m Message, _ int) bool {
		return !m.Deleted()
	})
}

func (c *Chat) History() []Message {
	return c.messages
}

// UnreadFor reports the unread counter for a member.
func (c *Chat) UnreadFor(userID uuid.UUID) int {
	return c.unread[userID]
}

// BumpUnread increments a member's unread counter. Non-members are
// ignored so counting policies stay free of membership checks.
func (c *Chat) BumpUnread(userID uuid.UUID) {
	if !c.IsMember(userID) {
		return
	}
	c.unread[userID]++
}

// ResetUnread floors the counter at zero, never below.
func (c *Chat) ResetUnread(userID uuid.UUID) {
	if !c.IsMember(userID) {
		return
	}
	c.unread[userID] = 0
}

// Mute marks a member as muted; muted members are skipped by
// mute-aware counting policies but still receive messages.
func (c *Chat) Mute(userID uuid.UUID) {
	if !c.IsMember(userID) {
		return
	}
	c.muted[userID] = struct{}{}
}

func (c *Chat) Unmute(userID uuid.UUID) {
	delete(c.muted, userID)
}

func (c *Chat) IsMuted(userID uuid.UUID) bool {
	_, ok := c.muted[userID]
	return ok
}
