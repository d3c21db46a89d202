package board

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrBlank is wrapped by a *ValidationError for empty or whitespace-only text.
	ErrBlank = errors.New("must not be blank")
	// ErrIndexOutOfRange is returned when a move names a source index that
	// does not exist in the source column.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrIDCollision is returned when the id generator keeps producing ids
	// already present on the board.
	ErrIDCollision = errors.New("id generator produced a duplicate id")
)

// Kind names the type of board element an error refers to.
type Kind string

const (
	KindColumn Kind = "column"
	KindTask   Kind = "task"
)

// ValidationError reports rejected user input.
type ValidationError struct {
	Field string // Input field, e.g. "title" or "content"
	Err   error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a column or task id absent from the board.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
