package services

import (
	"errors"
	"fmt"
	"log"

	"catalog/internal/repositories"
)

// Error classes returned by the services. Handlers map them onto HTTP
// statuses with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
)

// unexpectedMessage is the only text clients see for unclassified failures.
const unexpectedMessage = "Unexpected error, check server logs"

// Error is a classified service failure. Message is safe to return to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// handleDBError classifies a repository failure. Unique violations become a
// conflict carrying the store's detail; anything not otherwise known is
// logged and hidden behind a generic message.
func handleDBError(op string, err error) error {
	var dup *repositories.DuplicateError
	if errors.As(err, &dup) {
		return newError(ErrConflict, "%s", dup.Detail)
	}
	return internalError(op, err)
}

// internalError logs err with full detail and returns the opaque error
// clients receive.
func internalError(op string, err error) error {
	log.Printf("%s: %v", op, err)
	return newError(ErrInternal, unexpectedMessage)
}
