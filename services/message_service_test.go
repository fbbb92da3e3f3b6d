package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-dojo/domain"
	"chat-dojo/domain/event"
	"chat-dojo/errors"
	"chat-dojo/mocks"
	"chat-dojo/observability"
	"chat-dojo/repositories"
	"chat-dojo/search"
)

type serviceFixture struct {
	service   *MessageService
	extractor *mocks.MockExtractor
	notifier  *mocks.MockNotifier
	counter   *mocks.MockCounter
	repo      *mocks.MockIMessageRepository
	sink      *mocks.MockEventSink
	chat      *domain.Chat
	alice     domain.User
	bob       domain.User
	clara     domain.User
}

func newFixture(t *testing.T) serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	alice, err := domain.NewUser("Alice", "alice")
	require.NoError(t, err)
	bob, err := domain.NewUser("Bob", "bob")
	require.NoError(t, err)
	clara, err := domain.NewUser("Clara", "clara")
	require.NoError(t, err)

	f := serviceFixture{
		extractor: mocks.NewMockExtractor(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		counter:   mocks.NewMockCounter(ctrl),
		repo:      mocks.NewMockIMessageRepository(ctrl),
		sink:      mocks.NewMockEventSink(ctrl),
		chat:      domain.NewChat(1, "general", alice, bob, clara),
		alice:     alice,
		bob:       bob,
		clara:     clara,
	}
	f.service = NewMessageService(
		slog.Default(),
		f.extractor,
		f.notifier,
		f.counter,
		f.repo,
		nil,
		observability.NewStats(slog.Default()),
		f.sink,
	)
	f.service.RegisterChat(f.chat)
	return f
}

func TestMessageService_SendText_NotifiesMentionedAndOthers(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	var events []event.DomainEvent
	f.sink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.DomainEvent) error {
			events = append(events, e)
			return nil
		}).
		Times(2)

	f.extractor.EXPECT().
		Extract("hi @bob", gomock.Any()).
		Return([]domain.User{f.bob})

	// bob gets the mention-specific alert, clara the generic one,
	// alice (the sender) gets nothing
	f.notifier.EXPECT().NotifyMention(f.chat, f.bob, gomock.Any()).Times(1)
	f.notifier.EXPECT().NotifyMessage(f.chat, f.clara, gomock.Any()).Times(1)
	f.counter.EXPECT().Bump(f.chat, f.alice.ID, gomock.Any()).Times(1)

	msg, err := f.service.SendText(context.Background(), domain.SendTextCommand{
		Chat: 1, Sender: f.alice.ID, Body: "hi @bob",
	})
	req.NoError(err)
	req.NotNil(msg)
	req.Len(f.chat.ActiveMessages(), 1)

	req.Len(events, 2)
	sent, ok := events[0].(event.MessageSent)
	req.True(ok)
	req.Equal("alice", sent.Sender)
	req.Equal("hi @bob", sent.Content)

	mentionEvt, ok := events[1].(event.UserMentioned)
	req.True(ok)
	req.Equal("bob", mentionEvt.Mentioned)
}

func TestMessageService_SendText_SelfMentionIsIgnored(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.sink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1) // MessageSent only
	f.extractor.EXPECT().
		Extract(gomock.Any(), gomock.Any()).
		Return([]domain.User{f.alice})

	f.notifier.EXPECT().NotifyMention(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.notifier.EXPECT().NotifyMessage(f.chat, f.bob, gomock.Any()).Times(1)
	f.notifier.EXPECT().NotifyMessage(f.chat, f.clara, gomock.Any()).Times(1)
	f.counter.EXPECT().Bump(f.chat, f.alice.ID, gomock.Any()).Times(1)

	_, err := f.service.SendText(context.Background(), domain.SendTextCommand{
		Chat: 1, Sender: f.alice.ID, Body: "note to @alice myself",
	})
	req.NoError(err)
}

func TestMessageService_SendText_Guards(t *testing.T) {
	f := newFixture(t)

	t.Run("empty content", func(t *testing.T) {
		_, err := f.service.SendText(context.Background(), domain.SendTextCommand{
			Chat: 1, Sender: f.alice.ID, Body: "   ",
		})
		require.ErrorIs(t, err, errors.ErrEmptyContent)
	})

	t.Run("unknown chat", func(t *testing.T) {
		_, err := f.service.SendText(context.Background(), domain.SendTextCommand{
			Chat: 99, Sender: f.alice.ID, Body: "hello",
		})
		require.ErrorIs(t, err, errors.ErrUnknownChat)
	})

	t.Run("stranger cannot post", func(t *testing.T) {
		_, err := f.service.SendText(context.Background(), domain.SendTextCommand{
			Chat: 1, Sender: uuid.New(), Body: "hello",
		})
		require.ErrorIs(t, err, errors.ErrNotAMember)
	})
}

func TestMessageService_DeleteMessage(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.sink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().NotifyMessage(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.counter.EXPECT().Bump(gomock.Any(), gomock.Any(), gomock.Any())

	msg, err := f.service.SendText(context.Background(), domain.SendTextCommand{
		Chat: 1, Sender: f.alice.ID, Body: "regret this",
	})
	req.NoError(err)

	t.Run("only the sender can delete", func(t *testing.T) {
		err := f.service.DeleteMessage(context.Background(), domain.DeleteMessageCommand{
			Chat: 1, Sender: f.bob.ID, MessageID: msg.ID(),
		})
		require.ErrorIs(t, err, errors.ErrNotSender)
	})

	t.Run("soft delete keeps history", func(t *testing.T) {
		req := require.New(t)
		err := f.service.DeleteMessage(context.Background(), domain.DeleteMessageCommand{
			Chat: 1, Sender: f.alice.ID, MessageID: msg.ID(),
		})
		req.NoError(err)
		req.Empty(f.chat.ActiveMessages())
		req.Len(f.chat.History(), 1)
	})

	t.Run("double delete fails", func(t *testing.T) {
		err := f.service.DeleteMessage(context.Background(), domain.DeleteMessageCommand{
			Chat: 1, Sender: f.alice.ID, MessageID: msg.ID(),
		})
		require.ErrorIs(t, err, errors.ErrMessageNotFound)
	})

	t.Run("unknown message", func(t *testing.T) {
		err := f.service.DeleteMessage(context.Background(), domain.DeleteMessageCommand{
			Chat: 1, Sender: f.alice.ID, MessageID: uuid.New(),
		})
		require.ErrorIs(t, err, errors.ErrMessageNotFound)
	})
}

func TestMessageService_MarkRead(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.chat.BumpUnread(f.bob.ID)
	req.Equal(1, f.chat.UnreadFor(f.bob.ID))

	req.NoError(f.service.MarkRead(1, f.bob.ID))
	req.Equal(0, f.chat.UnreadFor(f.bob.ID))

	req.ErrorIs(f.service.MarkRead(1, uuid.New()), errors.ErrNotAMember)
	req.ErrorIs(f.service.MarkRead(99, f.bob.ID), errors.ErrUnknownChat)
}

func TestMessageService_Timeline_DelegatesToRepository(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	expected := []repositories.DiskMessage{{Chat: 1, Sender: "alice", Content: "hello"}}
	f.repo.EXPECT().
		GetMessages(1, gomock.Nil()).
		Return(expected, nil, nil).
		Times(1)

	got, _, err := f.service.Timeline(domain.TimelineCommand{Chat: 1})
	req.NoError(err)
	req.Equal(expected, got)
}

func TestMessageService_Search_UsesIndex(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	alice, err := domain.NewUser("Alice", "alice")
	req.NoError(err)
	bob, err := domain.NewUser("Bob", "bob")
	req.NoError(err)
	chat := domain.NewChat(1, "general", alice, bob)

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer writer.Close()
	index := search.NewIndex(writer, slog.Default())

	service := NewMessageService(
		slog.Default(),
		mocks.NewMockExtractor(ctrl),
		mocks.NewMockNotifier(ctrl),
		mocks.NewMockCounter(ctrl),
		mocks.NewMockIMessageRepository(ctrl),
		index,
		observability.NewStats(slog.Default()),
	)
	service.RegisterChat(chat)

	req.NoError(index.Store(search.Entry{
		ID: uuid.New(), Chat: 1, Sender: "alice", Content: "quarterly invoice",
	}))

	hits, err := service.Search(context.Background(), search.ParseQuery("/find invoice --chat 1"))
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("alice", hits[0].Sender)
}
