package e2e

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"

	"chat-dojo/domain"
	"chat-dojo/mention"
	"chat-dojo/notify"
	"chat-dojo/observability"
	"chat-dojo/projection"
	"chat-dojo/repositories"
	"chat-dojo/search"
	"chat-dojo/services"
	"chat-dojo/sink"
	"chat-dojo/unread"
)

type BaseSuite struct {
	suite.Suite
	Config Config
	Log    *slog.Logger
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.Log = logs.GetLoggerFromString(s.Config.LogLevel)
}

// Header prints a colorized section marker so multi-step scenarios
// stay readable in verbose test output.
func (s *BaseSuite) Header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// Stack holds a fully wired messaging stack backed by throwaway
// on-disk storage. Inboxes capture what each member's console
// notifier printed.
type Stack struct {
	Service  services.IMessageService
	Users    map[string]domain.User
	Chat     *domain.Chat
	Inboxes  map[string]*bytes.Buffer
	Timeline *projection.Timeline
	Stats    *observability.Stats
}

// NewStack builds the production wiring against temp directories.
// Storage is real Badger and Bluge, only the delivery side is
// captured in buffers.
func (s *BaseSuite) NewStack(t *testing.T, handles ...string) *Stack {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	s.Require().NoError(err)
	t.Cleanup(func() { _ = writer.Close() })

	users := make(map[string]domain.User, len(handles))
	members := make([]domain.User, 0, len(handles))
	userRepo := repositories.NewUserRepository(db)
	for _, handle := range handles {
		user, err := domain.NewUser(handle, handle)
		s.Require().NoError(err)
		s.Require().NoError(userRepo.CreateUser(user))
		users[handle] = user
		members = append(members, user)
	}
	chat := domain.NewChat(1, "e2e", members...)

	extractor, err := mention.NewAutomatonExtractor(members)
	s.Require().NoError(err)

	registry := notify.NewRegistry()
	inboxes := make(map[string]*bytes.Buffer, len(handles))
	for _, user := range users {
		buf := &bytes.Buffer{}
		inboxes[user.Handle] = buf
		registry.Subscribe(user.ID, chat.ID, notify.NewConsoleNotifierTo(buf))
	}

	pageSize := s.Config.PageSize
	messageRepo := repositories.NewMessageRepository(db, s.Log, &pageSize)
	index := search.NewIndex(writer, s.Log)
	stats := observability.NewStats(s.Log)
	timeline := projection.NewTimeline(handles[0])

	service := services.NewMessageService(
		s.Log,
		extractor,
		notify.NewMultiNotifier(notify.NewLogNotifier(s.Log), registry),
		unread.NewMuteAwareCounter(),
		messageRepo,
		index,
		stats,
		sink.NewDiskSink(messageRepo, s.Log),
		sink.NewIndexSink(index, s.Log),
		sink.NewTimelineSink(timeline),
	)
	service.RegisterChat(chat)

	return &Stack{
		Service:  service,
		Users:    users,
		Chat:     chat,
		Inboxes:  inboxes,
		Timeline: timeline,
		Stats:    stats,
	}
}
