package errors

import "fmt"

var (
	ErrUnknownChat     = fmt.Errorf("chat does not exist")
	ErrNotAMember      = fmt.Errorf("user is not a member of the chat")
	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrNotSender       = fmt.Errorf("only the sender can delete a message")
	ErrEmptyContent    = fmt.Errorf("message content is empty")
	ErrInvalidHandle   = fmt.Errorf("handle must start with a letter and contain only letters, digits or underscores")
	ErrHandleTaken     = fmt.Errorf("handle already registered")
	ErrEmptyHandles    = fmt.Errorf("no handles have been provided")
)
