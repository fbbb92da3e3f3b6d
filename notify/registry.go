package notify

import (
	"sync"

	"github.com/google/uuid"

	"chat-dojo/domain"
)

type set map[uuid.UUID]struct{}

// Registry routes notifications to per-user channels. A user only
// receives alerts for chats they subscribed to; notifications for
// unregistered users are dropped silently, mirroring how a real
// gateway ignores offline devices.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]Notifier // user -> their channel
	subscribers map[domain.ChatID]set  // chat -> subscribed users
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:    make(map[uuid.UUID]Notifier),
		subscribers: make(map[domain.ChatID]set),
	}
}

// Subscribe registers a user's notification channel for a chat.
// The channel is shared across chats: subscribing twice with a new
// notifier replaces the old one.
func (r *Registry) Subscribe(userID uuid.UUID, chatID domain.ChatID, notifier Notifier) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[userID] = notifier

	if _, ok := r.subscribers[chatID]; !ok {
		r.subscribers[chatID] = make(set)
	}
	r.subscribers[chatID][userID] = struct{}{}
}

// Unsubscribe removes a user from a chat and drops their session.
// Empty subscriber sets are removed so the map does not grow forever.
func (r *Registry) Unsubscribe(userID uuid.UUID, chatID domain.ChatID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)

	if members, ok := r.subscribers[chatID]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(r.subscribers, chatID)
		}
	}
}

func (r *Registry) channelFor(userID uuid.UUID, chatID domain.ChatID) (Notifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.subscribers[chatID]
	if !ok {
		return nil, false
	}
	if _, ok = members[userID]; !ok {
		return nil, false
	}
	notifier, ok := r.sessions[userID]
	return notifier, ok
}

func (r *Registry) NotifyMessage(chat *domain.Chat, recipient domain.User, msg domain.Message) {
	if notifier, ok := r.channelFor(recipient.ID, chat.ID); ok {
		notifier.NotifyMessage(chat, recipient, msg)
	}
}

func (r *Registry) NotifyMention(chat *domain.Chat, recipient domain.User, msg domain.Message) {
	if notifier, ok := r.channelFor(recipient.ID, chat.ID); ok {
		notifier.NotifyMention(chat, recipient, msg)
	}
}
