package unread

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chat-dojo/domain"
	"chat-dojo/mention"
)

func chatWith(t *testing.T) (*domain.Chat, domain.User, domain.User, domain.User) {
	t.Helper()
	alice, err := domain.NewUser("Alice", "alice")
	require.NoError(t, err)
	bob, err := domain.NewUser("Bob", "bob")
	require.NoError(t, err)
	clara, err := domain.NewUser("Clara", "clara")
	require.NoError(t, err)
	return domain.NewChat(1, "general", alice, bob, clara), alice, bob, clara
}

func TestBasicCounter_ExcludesSender(t *testing.T) {
	req := require.New(t)
	chat, alice, bob, clara := chatWith(t)

	msg := domain.NewTextMessage(alice.ID, "hello")
	NewBasicCounter().Bump(chat, alice.ID, msg)

	req.Equal(0, chat.UnreadFor(alice.ID))
	req.Equal(1, chat.UnreadFor(bob.ID))
	req.Equal(1, chat.UnreadFor(clara.ID))
}

func TestMuteAwareCounter_SkipsMuted(t *testing.T) {
	req := require.New(t)
	chat, alice, bob, clara := chatWith(t)
	chat.Mute(clara.ID)

	msg := domain.NewTextMessage(alice.ID, "hello")
	NewMuteAwareCounter().Bump(chat, alice.ID, msg)

	req.Equal(1, chat.UnreadFor(bob.ID))
	req.Equal(0, chat.UnreadFor(clara.ID))
}

func TestImportanceCounter_MentionOnly(t *testing.T) {
	req := require.New(t)
	chat, alice, bob, clara := chatWith(t)
	counter := NewImportanceCounter(mention.NewTokenExtractor(false), []string{"urgent"})

	msg := domain.NewTextMessage(alice.ID, "just for @bob")
	counter.Bump(chat, alice.ID, msg)

	req.Equal(1, chat.UnreadFor(bob.ID))
	req.Equal(0, chat.UnreadFor(clara.ID))
	req.Equal(0, chat.UnreadFor(alice.ID))
}

func TestImportanceCounter_KeywordBumpsEveryone(t *testing.T) {
	req := require.New(t)
	chat, alice, bob, clara := chatWith(t)
	counter := NewImportanceCounter(mention.NewTokenExtractor(false), []string{"urgent"})

	msg := domain.NewTextMessage(alice.ID, "URGENT: prod is down")
	counter.Bump(chat, alice.ID, msg)

	req.Equal(0, chat.UnreadFor(alice.ID))
	req.Equal(1, chat.UnreadFor(bob.ID))
	req.Equal(1, chat.UnreadFor(clara.ID))
}

func TestImportanceCounter_SmallTalkBumpsNobody(t *testing.T) {
	req := require.New(t)
	chat, alice, bob, clara := chatWith(t)
	counter := NewImportanceCounter(mention.NewTokenExtractor(false), []string{"urgent"})

	msg := domain.NewTextMessage(alice.ID, "nice weather today")
	counter.Bump(chat, alice.ID, msg)

	req.Equal(0, chat.UnreadFor(bob.ID))
	req.Equal(0, chat.UnreadFor(clara.ID))
}
