//go:generate go run go.uber.org/mock/mockgen -source=counter.go -destination=../mocks/mock_counter.go -package=mocks

// Package unread decides how per-member unread counters move when a
// message lands. Counters live on the Chat aggregate; policies here
// only choose who gets bumped.
package unread

import (
	"strings"

	"github.com/google/uuid"

	"chat-dojo/domain"
	"chat-dojo/mention"
)

type Counter interface {
	Bump(chat *domain.Chat, sender uuid.UUID, msg domain.Message)
}

// BasicCounter bumps every member except the sender.
type BasicCounter struct{}

func NewBasicCounter() BasicCounter {
	return BasicCounter{}
}

func (BasicCounter) Bump(chat *domain.Chat, sender uuid.UUID, _ domain.Message) {
	for _, member := range chat.Members() {
		if member.ID == sender {
			continue
		}
		chat.BumpUnread(member.ID)
	}
}

// MuteAwareCounter additionally skips members who muted the chat.
type MuteAwareCounter struct{}

func NewMuteAwareCounter() MuteAwareCounter {
	return MuteAwareCounter{}
}

func (MuteAwareCounter) Bump(chat *domain.Chat, sender uuid.UUID, _ domain.Message) {
	for _, member := range chat.Members() {
		if member.ID == sender || chat.IsMuted(member.ID) {
			continue
		}
		chat.BumpUnread(member.ID)
	}
}

// ImportanceCounter only bumps a member when the message matters to
// them: it mentions them, or its content carries one of the
// configured keywords.
type ImportanceCounter struct {
	extractor mention.Extractor
	keywords  []string
}

func NewImportanceCounter(extractor mention.Extractor, keywords []string) ImportanceCounter {
	return ImportanceCounter{extractor: extractor, keywords: keywords}
}

func (c ImportanceCounter) Bump(chat *domain.Chat, sender uuid.UUID, msg domain.Message) {
	content := msg.ScanText()

	urgent := false
	lowered := strings.ToLower(content)
	for _, kw := range c.keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			urgent = true
			break
		}
	}

	mentioned := make(map[uuid.UUID]struct{})
	for _, u := range c.extractor.Extract(content, chat.Members()) {
		mentioned[u.ID] = struct{}{}
	}

	for _, member := range chat.Members() {
		if member.ID == sender {
			continue
		}
		if _, ok := mentioned[member.ID]; !ok && !urgent {
			continue
		}
		chat.BumpUnread(member.ID)
	}
}
