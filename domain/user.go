// Package domain contains core concepts of the chat system.
// This file defines User identities and their invariants.
// Users are immutable once constructed.
package domain

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"chat-dojo/errors"
)

var validate = validator.New()

// handlePattern keeps handles mention-safe: anything else would make
// "@handle" tokenization ambiguous.
var handlePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// User is an immutable identity record.
type User struct {
	ID     uuid.UUID
	Name   string
	Handle string
}

type newUserRequest struct {
	Name   string `validate:"required,max=64"`
	Handle string `validate:"required,min=2,max=32"`
}

// NewUser builds a User with a fresh ID. The leading "@" is accepted
// and stripped so callers can pass a handle either way.
func NewUser(name, handle string) (User, error) {
	handle = strings.TrimPrefix(handle, "@")
	if err := validate.Struct(newUserRequest{Name: name, Handle: handle}); err != nil {
		return User{}, err
	}
	if !handlePattern.MatchString(handle) {
		return User{}, errors.ErrInvalidHandle
	}
	return User{ID: uuid.New(), Name: name, Handle: handle}, nil
}

// Mention returns the "@handle" form used inside message content.
func (u User) Mention() string {
	return "@" + u.Handle
}
