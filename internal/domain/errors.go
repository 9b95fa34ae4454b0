// Package domain holds the shared error taxonomy and the message formats
// that make up the observable contract of the repositories. Message text is
// asserted on by boundary tests, so the formats here change only with the API.
package domain

import "fmt"

// Message formats shared across repositories and services.
const (
	PetNotFoundMsg   = "Pet with id %d not found"
	OrderNotFoundMsg = "Order with id %d not found"
	UserNotFoundMsg  = "User with id %d not found"

	UsernameNotFoundMsg    = "User with username %s not found"
	UserAlreadyLoggedInMsg = "User with username %s already logged in"
	UserBadCredentialsMsg  = "User with username %s and password %s not found"
	// One message for both "no such user" and "not logged in"; the original
	// API does not distinguish the two on logout.
	UserAlreadyLoggedOutMsg = "User with username %s already logged out"

	NoTagsProvidedMsg = "No tags were provided"

	LoggedInSessionMsg = "Logged in user session: %d"
	LoggedOutMsg       = "Logged out: %d"
)

// NotFoundError signals that an entity, or a record referenced by one, does
// not exist. The boundary maps it to 404.
type NotFoundError struct {
	msg string
}

// NewNotFoundError builds a NotFoundError from a message format and args.
func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string { return e.msg }

// InvalidRequestError signals a failed state-machine or request-shape
// precondition. The boundary maps it to 400.
type InvalidRequestError struct {
	msg string
}

// NewInvalidRequestError builds an InvalidRequestError from a message format
// and args.
func NewInvalidRequestError(format string, args ...any) *InvalidRequestError {
	return &InvalidRequestError{msg: fmt.Sprintf(format, args...)}
}

func (e *InvalidRequestError) Error() string { return e.msg }
