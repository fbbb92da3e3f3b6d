package notify

import (
	"io"
	"os"

	"github.com/gookit/color"

	"chat-dojo/domain"
)

// ConsoleNotifier prints colorized notification lines, mentions
// highlighted so they stand out in the demo output.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier() ConsoleNotifier {
	return ConsoleNotifier{out: os.Stdout}
}

// NewConsoleNotifierTo directs output elsewhere, used by tests.
func NewConsoleNotifierTo(out io.Writer) ConsoleNotifier {
	return ConsoleNotifier{out: out}
}

func (n ConsoleNotifier) NotifyMessage(chat *domain.Chat, recipient domain.User, msg domain.Message) {
	color.Fprintf(n.out, "<cyan>[%s]</> to %s: %s\n",
		chat.Title, recipient.Mention(), preview(msg))
}

func (n ConsoleNotifier) NotifyMention(chat *domain.Chat, recipient domain.User, msg domain.Message) {
	color.Fprintf(n.out, "<yellow>[%s]</> <bold>%s, you were mentioned:</> %s\n",
		chat.Title, recipient.Mention(), preview(msg))
}
