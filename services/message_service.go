package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"chat-dojo/contract"
	"chat-dojo/domain"
	"chat-dojo/domain/event"
	"chat-dojo/errors"
	"chat-dojo/mention"
	"chat-dojo/notify"
	"chat-dojo/observability"
	"chat-dojo/repositories"
	"chat-dojo/search"
	"chat-dojo/unread"
)

type IMessageService interface {
	RegisterChat(chat *domain.Chat)
	SendText(ctx context.Context, cmd domain.SendTextCommand) (domain.Message, error)
	SendMedia(ctx context.Context, cmd domain.SendMediaCommand) (domain.Message, error)
	DeleteMessage(ctx context.Context, cmd domain.DeleteMessageCommand) error
	MarkRead(chatID domain.ChatID, userID uuid.UUID) error
	Timeline(cmd domain.TimelineCommand) ([]repositories.DiskMessage, *string, error)
	Search(ctx context.Context, query *search.Query) ([]search.Hit, error)
}

// MessageService orchestrates message dispatch. The three policy
// collaborators (mention extraction, notification, unread counting)
// are injected, so swapping a policy never touches this file.
type MessageService struct {
	mu        sync.Mutex
	log       *slog.Logger
	chats     map[domain.ChatID]*domain.Chat
	extractor mention.Extractor
	notifier  notify.Notifier
	counter   unread.Counter
	messages  repositories.IMessageRepository
	index     *search.Index
	sinks     []contract.EventSink
	stats     *observability.Stats
}

func NewMessageService(
	log *slog.Logger,
	extractor mention.Extractor,
	notifier notify.Notifier,
	counter unread.Counter,
	messages repositories.IMessageRepository,
	index *search.Index,
	stats *observability.Stats,
	sinks ...contract.EventSink,
) *MessageService {
	return &MessageService{
		log:       log,
		chats:     make(map[domain.ChatID]*domain.Chat),
		extractor: extractor,
		notifier:  notifier,
		counter:   counter,
		messages:  messages,
		index:     index,
		sinks:     sinks,
		stats:     stats,
	}
}

func (s *MessageService) RegisterChat(chat *domain.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chats[chat.ID]; ok {
		s.log.Info(fmt.Sprintf("Chat %d already registered", chat.ID))
		return
	}
	s.chats[chat.ID] = chat
}

func (s *MessageService) chat(id domain.ChatID) (*domain.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat, ok := s.chats[id]
	if !ok {
		return nil, errors.ErrUnknownChat
	}
	return chat, nil
}

func (s *MessageService) SendText(ctx context.Context, cmd domain.SendTextCommand) (domain.Message, error) {
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.ErrEmptyContent
	}
	chat, err := s.chat(cmd.ChatID())
	if err != nil {
		return nil, err
	}
	msg := domain.NewTextMessage(cmd.Sender, cmd.Body)
	if err := s.dispatch(ctx, chat, msg, "text"); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) SendMedia(ctx context.Context, cmd domain.SendMediaCommand) (domain.Message, error) {
	if strings.TrimSpace(cmd.Path) == "" {
		return nil, errors.ErrEmptyContent
	}
	chat, err := s.chat(cmd.ChatID())
	if err != nil {
		return nil, err
	}
	msg := domain.NewMediaMessage(cmd.Sender, cmd.Path, cmd.Caption)
	if err := s.dispatch(ctx, chat, msg, msg.Kind); err != nil {
		return nil, err
	}
	return msg, nil
}

// dispatch runs the send pipeline: append to the aggregate, fan the
// event out to sinks (persistence, index, projections), extract
// mentions, notify, and update unread counters.
func (s *MessageService) dispatch(ctx context.Context, chat *domain.Chat, msg domain.Message, kind string) error {
	if err := chat.Append(msg); err != nil {
		return err
	}

	sender, _ := chat.Member(msg.SenderID())

	s.emit(ctx, event.MessageSent{
		ID:      msg.ID(),
		Chat:    int(chat.ID),
		Sender:  sender.Handle,
		Kind:    kind,
		Content: msg.DisplayText(),
		Lang:    detectLang(msg.ScanText()),
		At:      msg.SentAt(),
	})
	s.stats.IncrMessagesSent()

	mentioned := s.extractor.Extract(msg.ScanText(), chat.Members())
	mentionedIDs := make(map[uuid.UUID]struct{}, len(mentioned))
	for _, u := range mentioned {
		if u.ID == msg.SenderID() {
			// self-mentions carry no signal
			continue
		}
		mentionedIDs[u.ID] = struct{}{}
		s.notifier.NotifyMention(chat, u, msg)
		s.stats.IncrNotifications()
		s.emit(ctx, event.UserMentioned{
			MessageID: msg.ID(),
			Chat:      int(chat.ID),
			Sender:    sender.Handle,
			Mentioned: u.Handle,
			At:        msg.SentAt(),
		})
	}
	s.stats.IncrMentions(len(mentionedIDs))

	for _, member := range chat.Members() {
		if member.ID == msg.SenderID() {
			continue
		}
		if _, wasMentioned := mentionedIDs[member.ID]; wasMentioned {
			continue
		}
		s.notifier.NotifyMessage(chat, member, msg)
		s.stats.IncrNotifications()
	}

	s.counter.Bump(chat, msg.SenderID(), msg)
	return nil
}

// DeleteMessage soft deletes: the flag is set, the record stays.
// Only the original sender may delete their message.
func (s *MessageService) DeleteMessage(ctx context.Context, cmd domain.DeleteMessageCommand) error {
	chat, err := s.chat(cmd.ChatID())
	if err != nil {
		return err
	}
	msg, ok := chat.Find(cmd.MessageID)
	if !ok || msg.Deleted() {
		return errors.ErrMessageNotFound
	}
	if msg.SenderID() != cmd.Sender {
		return errors.ErrNotSender
	}

	msg.MarkDeleted()
	sender, _ := chat.Member(cmd.Sender)

	s.emit(ctx, event.MessageDeleted{
		MessageID: msg.ID(),
		Chat:      int(chat.ID),
		Sender:    sender.Handle,
		SentAt:    msg.SentAt(),
		At:        time.Now().UTC(),
	})
	s.stats.IncrMessagesDeleted()
	return nil
}

// MarkRead resets the caller's unread counter for the chat.
func (s *MessageService) MarkRead(chatID domain.ChatID, userID uuid.UUID) error {
	chat, err := s.chat(chatID)
	if err != nil {
		return err
	}
	if !chat.IsMember(userID) {
		return errors.ErrNotAMember
	}
	chat.ResetUnread(userID)
	return nil
}

// Timeline pages through persisted history, newest first.
func (s *MessageService) Timeline(cmd domain.TimelineCommand) ([]repositories.DiskMessage, *string, error) {
	return s.messages.GetMessages(cmd.Chat, cmd.Cursor)
}

// Search runs a parsed query against the content index.
func (s *MessageService) Search(ctx context.Context, query *search.Query) ([]search.Hit, error) {
	return s.index.Search(ctx, query.Chat, query.Terms, query.Limit)
}

// emit hands an event to every sink in order. A failing sink is
// logged and skipped: projections and storage are independent.
func (s *MessageService) emit(ctx context.Context, e event.DomainEvent) {
	for _, snk := range s.sinks {
		if err := snk.Consume(ctx, e); err != nil {
			s.log.Error("sink failed", "event", fmt.Sprintf("%T", e), "error", err)
		}
	}
}

// detectLang returns the ISO 639-1 code of the content language,
// empty when detection is unreliable on short strings.
func detectLang(content string) string {
	if content == "" {
		return ""
	}
	info := whatlanggo.Detect(content)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
