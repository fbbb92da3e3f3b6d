package projection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"chat-dojo/domain/event"
)

func TestTimeline_AppendsAndCountsUnread(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("alice")
	now := time.Now().UTC()

	timeline.Consume(event.MessageSent{ID: uuid.New(), Chat: 1, Sender: "bob", Content: "hi", At: now})
	timeline.Consume(event.MessageSent{ID: uuid.New(), Chat: 1, Sender: "alice", Content: "hey", At: now})

	req.Len(timeline.Messages, 2)
	// own messages never count as unread
	req.Equal(1, timeline.Unread)

	timeline.MarkRead()
	req.Equal(0, timeline.Unread)
}

func TestTimeline_DropsDeletedMessages(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("alice")
	now := time.Now().UTC()

	kept := uuid.New()
	removed := uuid.New()
	timeline.Consume(event.MessageSent{ID: kept, Chat: 1, Sender: "bob", Content: "keep", At: now})
	timeline.Consume(event.MessageSent{ID: removed, Chat: 1, Sender: "bob", Content: "drop", At: now})

	timeline.Consume(event.MessageDeleted{MessageID: removed, Chat: 1, Sender: "bob", At: now})

	req.Len(timeline.Messages, 1)
	req.Equal(kept, timeline.Messages[0].ID)
}

func TestTimeline_IgnoresUnknownEvents(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("alice")

	timeline.Consume(event.UserMentioned{MessageID: uuid.New(), Chat: 1, Sender: "bob", Mentioned: "alice"})
	req.Empty(timeline.Messages)
	req.Equal(0, timeline.Unread)
}
