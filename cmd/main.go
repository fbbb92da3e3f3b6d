package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"chat-dojo/domain"
	"chat-dojo/internal"
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

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, plays a scripted conversation
// through the message service, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly
// because it ensures all 'defer' statements (like database cleanup)
// are executed before the program exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Users & chat
	alice, err := domain.NewUser("Alice", "alice")
	if err != nil {
		return err
	}
	bob, err := domain.NewUser("Bob", "bob")
	if err != nil {
		return err
	}
	clara, err := domain.NewUser("Clara", "clara")
	if err != nil {
		return err
	}
	userRepo := repositories.NewUserRepository(db)
	for _, u := range []domain.User{alice, bob, clara} {
		if err := userRepo.CreateUser(u); err != nil {
			log.Warn("user not persisted", "handle", u.Handle, "error", err)
		}
	}
	chat := domain.NewChat(1, "general", alice, bob, clara)

	// 4. Policies, notification routing, sinks
	extractor, err := buildExtractor(config, []domain.User{alice, bob, clara})
	if err != nil {
		return err
	}

	registry := notify.NewRegistry()
	console := notify.NewConsoleNotifier()
	for _, u := range []domain.User{alice, bob, clara} {
		registry.Subscribe(u.ID, chat.ID, console)
	}
	notifier := notify.NewMultiNotifier(notify.NewLogNotifier(log), registry)

	counter := buildCounter(config, extractor)

	messageRepo := repositories.NewMessageRepository(db, log, config.LimitMessages)
	index := search.NewIndex(blugeWriter, log)
	stats := observability.NewStats(log)

	bobTimeline := projection.NewTimeline(bob.Handle)
	service := services.NewMessageService(
		log, extractor, notifier, counter, messageRepo, index, stats,
		sink.NewDiskSink(messageRepo, log),
		sink.NewIndexSink(index, log),
		sink.NewTimelineSink(bobTimeline),
	)
	service.RegisterChat(chat)

	// 5. Context, signals & periodic stats
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go stats.Listen(ctx, config.StatsInterval)

	// 6. Scripted conversation
	if err := play(ctx, service, chat, alice, bob, clara); err != nil {
		return err
	}

	// 7. Summaries
	printUnread(chat)
	log.Info("bob timeline", "messages", len(bobTimeline.Messages), "unread", bobTimeline.Unread)
	snap := stats.Snapshot()
	log.Info("final stats",
		"sent", snap.MessagesSent,
		"deleted", snap.MessagesDeleted,
		"mentions", snap.MentionsDetected,
		"notifications", snap.Notifications,
	)
	return nil
}

func buildExtractor(config internal.Config, directory []domain.User) (mention.Extractor, error) {
	switch config.MentionPolicy {
	case "substring":
		return mention.NewSubstringExtractor(), nil
	case "automaton":
		return mention.NewAutomatonExtractor(directory)
	default:
		return mention.NewTokenExtractor(config.CaseSensitiveMentions), nil
	}
}

func buildCounter(config internal.Config, extractor mention.Extractor) unread.Counter {
	switch config.UnreadPolicy {
	case "mute":
		return unread.NewMuteAwareCounter()
	case "importance":
		return unread.NewImportanceCounter(extractor, config.ImportantWords)
	default:
		return unread.NewBasicCounter()
	}
}

func play(ctx context.Context, service services.IMessageService, chat *domain.Chat,
	alice, bob, clara domain.User) error {
	if _, err := service.SendText(ctx, domain.SendTextCommand{
		Chat: 1, Sender: alice.ID, Body: "morning everyone",
	}); err != nil {
		return err
	}
	if _, err := service.SendText(ctx, domain.SendTextCommand{
		Chat: 1, Sender: bob.ID, Body: "@alice did you see the invoice?",
	}); err != nil {
		return err
	}
	regret, err := service.SendText(ctx, domain.SendTextCommand{
		Chat: 1, Sender: clara.ID, Body: "wrong chat, sorry",
	})
	if err != nil {
		return err
	}
	if err := service.DeleteMessage(ctx, domain.DeleteMessageCommand{
		Chat: 1, Sender: clara.ID, MessageID: regret.ID(),
	}); err != nil {
		return err
	}
	if _, err := service.SendMedia(ctx, domain.SendMediaCommand{
		Chat: 1, Sender: clara.ID, Path: "holiday.png", Caption: "@bob look at this",
	}); err != nil {
		return err
	}
	if err := service.MarkRead(chat.ID, alice.ID); err != nil {
		return err
	}

	hits, err := service.Search(ctx, search.ParseQuery("/find invoice --chat 1"))
	if err != nil {
		return err
	}
	for _, hit := range hits {
		fmt.Printf("search hit: %s: %s\n", hit.Sender, hit.Content)
	}

	timeline, _, err := service.Timeline(domain.TimelineCommand{Chat: 1})
	if err != nil {
		return err
	}
	fmt.Printf("persisted history: %d messages\n", len(timeline))
	return nil
}

func printUnread(chat *domain.Chat) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Member", "Unread"})
	table.SetBorder(false)
	for _, member := range chat.Members() {
		table.Append([]string{member.Mention(), strconv.Itoa(chat.UnreadFor(member.ID))})
	}
	table.Render()
}
