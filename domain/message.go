// Package domain contains core concepts of the chat system.
// This file defines the Message hierarchy: text and media variants
// behind a common interface used by policies and projections.
package domain

import (
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Message is a chat event. DisplayText is the human-facing form,
// ScanText is the form given to mention extraction.
type Message interface {
	ID() uuid.UUID
	SenderID() uuid.UUID
	SentAt() time.Time
	Deleted() bool
	MarkDeleted()
	DisplayText() string
	ScanText() string
}

// Meta carries the identity shared by every message variant.
type Meta struct {
	MsgID   uuid.UUID
	Sender  uuid.UUID
	At      time.Time
	Removed bool
}

func newMeta(sender uuid.UUID) Meta {
	return Meta{MsgID: uuid.New(), Sender: sender, At: time.Now().UTC()}
}

func (m *Meta) ID() uuid.UUID       { return m.MsgID }
func (m *Meta) SenderID() uuid.UUID { return m.Sender }
func (m *Meta) SentAt() time.Time   { return m.At }
func (m *Meta) Deleted() bool       { return m.Removed }
func (m *Meta) MarkDeleted()        { m.Removed = true }

// TextMessage is the free-text variant.
type TextMessage struct {
	Meta
	Body string
}

func NewTextMessage(sender uuid.UUID, body string) *TextMessage {
	return &TextMessage{Meta: newMeta(sender), Body: body}
}

func (t *TextMessage) DisplayText() string { return t.Body }
func (t *TextMessage) ScanText() string    { return t.Body }

// MediaMessage carries a file reference with an optional caption.
// Mentions can only live in the caption.
type MediaMessage struct {
	Meta
	Kind    string // MIME type, e.g. "image/png"
	Path    string
	Caption string
}

// NewMediaMessage detects the media kind from file content when the
// file is readable, falling back to the extension.
func NewMediaMessage(sender uuid.UUID, path, caption string) *MediaMessage {
	kind := "application/octet-stream"
	if mt, err := mimetype.DetectFile(path); err == nil {
		kind = mt.String()
	} else if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		if parsed, _, err := mime.ParseMediaType(byExt); err == nil {
			kind = parsed
		}
	}
	return &MediaMessage{Meta: newMeta(sender), Kind: kind, Path: path, Caption: caption}
}

func (m *MediaMessage) DisplayText() string {
	base := fmt.Sprintf("[%s] %s", m.Kind, filepath.Base(m.Path))
	if m.Caption == "" {
		return base
	}
	return base + ": " + m.Caption
}

func (m *MediaMessage) ScanText() string { return m.Caption }
