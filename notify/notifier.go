//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=../mocks/mock_notifier.go -package=mocks

// Package notify decides how members are alerted about new messages
// and mentions. Delivery here is a stand-in for real channels (push,
// email): a log line or a terminal print, no retry, no confirmation.
package notify

import (
	"fmt"
	"log/slog"

	"chat-dojo/domain"
)

type Notifier interface {
	NotifyMessage(chat *domain.Chat, recipient domain.User, msg domain.Message)
	NotifyMention(chat *domain.Chat, recipient domain.User, msg domain.Message)
}

// LogNotifier writes structured notification lines.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) LogNotifier {
	return LogNotifier{log: log}
}

func (n LogNotifier) NotifyMessage(chat *domain.Chat, recipient domain.User, msg domain.Message) {
	n.log.Info("new message",
		"chat", chat.Title,
		"recipient", recipient.Handle,
		"preview", preview(msg),
	)
}

func (n LogNotifier) NotifyMention(chat *domain.Chat, recipient domain.User, msg domain.Message) {
	n.log.Info("you were mentioned",
		"chat", chat.Title,
		"recipient", recipient.Handle,
		"preview", preview(msg),
	)
}

// MultiNotifier fans a notification out to several channels.
type MultiNotifier struct {
	notifiers []Notifier
}

func NewMultiNotifier(notifiers ...Notifier) MultiNotifier {
	return MultiNotifier{notifiers: notifiers}
}

func (m MultiNotifier) NotifyMessage(chat *domain.Chat, recipient domain.User, msg domain.Message) {
	for _, n := range m.notifiers {
		n.NotifyMessage(chat, recipient, msg)
	}
}

func (m MultiNotifier) NotifyMention(chat *domain.Chat, recipient domain.User, msg domain.Message) {
	for _, n := range m.notifiers {
		n.NotifyMention(chat, recipient, msg)
	}
}

const previewLen = 40

func preview(msg domain.Message) string {
	text := msg.DisplayText()
	runes := []rune(text)
	if len(runes) <= previewLen {
		return text
	}
	return fmt.Sprintf("%s…", string(runes[:previewLen]))
}
