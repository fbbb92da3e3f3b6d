package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chat-dojo/errors"
)

func TestNewUser_ValidHandles(t *testing.T) {
	tests := []struct {
		name   string
		handle string
	}{
		{"plain handle", "alice"},
		{"mixed case", "BobTheBuilder"},
		{"digits and underscore", "clara_42"},
		{"leading at sign is stripped", "@dave"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			u, err := NewUser("Someone", tt.handle)
			req.NoError(err)
			req.NotEqual("", u.Handle)
			req.NotContains(u.Handle, "@")
			req.Equal("@"+u.Handle, u.Mention())
		})
	}
}

func TestNewUser_RejectsBadHandles(t *testing.T) {
	tests := []struct {
		name   string
		handle string
	}{
		{"empty", ""},
		{"single rune", "a"},
		{"leading digit", "1alice"},
		{"spaces", "al ice"},
		{"punctuation", "al.ice"},
		{"unicode symbol", "ali€e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser("Someone", tt.handle)
			require.Error(t, err)
		})
	}
}

func TestNewUser_RejectsEmptyName(t *testing.T) {
	_, err := NewUser("", "alice")
	require.Error(t, err)
}

func TestNewUser_HandleShapeError(t *testing.T) {
	_, err := NewUser("Someone", "al.ice")
	require.ErrorIs(t, err, errors.ErrInvalidHandle)
}
