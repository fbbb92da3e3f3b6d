package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTextMessage_Forms(t *testing.T) {
	req := require.New(t)
	sender := uuid.New()
	msg := NewTextMessage(sender, "hello @bob")

	req.Equal(sender, msg.SenderID())
	req.Equal("hello @bob", msg.DisplayText())
	req.Equal("hello @bob", msg.ScanText())
	req.False(msg.Deleted())

	msg.MarkDeleted()
	req.True(msg.Deleted())
}

func TestMediaMessage_ScanTextIsCaption(t *testing.T) {
	req := require.New(t)
	msg := NewMediaMessage(uuid.New(), "holiday.png", "look at this @alice")

	req.Equal("look at this @alice", msg.ScanText())
	req.Contains(msg.DisplayText(), "holiday.png")
	req.Contains(msg.DisplayText(), "look at this @alice")
}

func TestMediaMessage_KindFromContent(t *testing.T) {
	req := require.New(t)
	// A real PNG header so content sniffing kicks in.
	path := filepath.Join(t.TempDir(), "pic.bin")
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	req.NoError(os.WriteFile(path, png, 0o600))

	msg := NewMediaMessage(uuid.New(), path, "")
	req.Equal("image/png", msg.Kind)
}

func TestMediaMessage_KindFallsBackToExtension(t *testing.T) {
	msg := NewMediaMessage(uuid.New(), "missing/file.png", "")
	require.Equal(t, "image/png", msg.Kind)
}
