package board

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxIDAttempts bounds retries when the generator returns a used id.
const maxIDAttempts = 8

// IDGenerator returns a fresh opaque identifier.
type IDGenerator func() string

// Store applies board mutations. It holds no board state of its own; every
// method maps an input board and arguments to a new board.
type Store struct {
	newID      IDGenerator
	now        func() time.Time
	formatDate DateFormatter
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator sets the id source for new columns and tasks.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithClock sets the time source used to stamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithDateFormatter sets how task creation dates are rendered.
func WithDateFormatter(f DateFormatter) Option {
	return func(s *Store) {
		if f != nil {
			s.formatDate = f
		}
	}
}

// NewStore returns a Store using random UUIDs and the wall clock unless
// overridden.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID:      uuid.NewString,
		now:        time.Now,
		formatDate: DayMonth("en"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) freshID(b Board) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != "" && !b.hasID(id) {
			return id, nil
		}
	}
	return "", ErrIDCollision
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Err: ErrBlank}
	}
	return nil
}

// AddColumn appends a new empty column at the end of the board.
func (s *Store) AddColumn(b Board, title string, color Color) (Board, error) {
	if err := requireText("title", title); err != nil {
		return b, err
	}
	id, err := s.freshID(b)
	if err != nil {
		return b, err
	}

	next := b.Clone()
	next.Columns = append(next.Columns, Column{
		ID:    id,
		Title: title,
		Color: ParseColor(string(color)),
		Items: []Task{},
	})
	return next, nil
}

// EditColumn replaces a column's title and color. Items and position are kept.
func (s *Store) EditColumn(b Board, columnID, title string, color Color) (Board, error) {
	if err := requireText("title", title); err != nil {
		return b, err
	}
	ci := b.ColumnIndex(columnID)
	if ci < 0 {
		return b, &NotFoundError{Kind: KindColumn, ID: columnID}
	}

	next := b.Clone()
	next.Columns[ci].Title = title
	next.Columns[ci].Color = ParseColor(string(color))
	return next, nil
}

// DeleteColumn removes a column together with all of its tasks.
func (s *Store) DeleteColumn(b Board, columnID string) (Board, error) {
	ci := b.ColumnIndex(columnID)
	if ci < 0 {
		return b, &NotFoundError{Kind: KindColumn, ID: columnID}
	}

	next := b.Clone()
	next.Columns = append(next.Columns[:ci], next.Columns[ci+1:]...)
	return next, nil
}

// AddTask appends a new task to the end of a column.
func (s *Store) AddTask(b Board, columnID, content string, priority Priority) (Board, error) {
	if err := requireText("content", content); err != nil {
		return b, err
	}
	ci := b.ColumnIndex(columnID)
	if ci < 0 {
		return b, &NotFoundError{Kind: KindColumn, ID: columnID}
	}
	id, err := s.freshID(b)
	if err != nil {
		return b, err
	}

	next := b.Clone()
	next.Columns[ci].Items = append(next.Columns[ci].Items, Task{
		ID:       id,
		Content:  content,
		Priority: ParsePriority(string(priority)),
		Date:     s.formatDate(s.now()),
	})
	return next, nil
}

// EditTask replaces a task's content and priority in place.
func (s *Store) EditTask(b Board, columnID, taskID, content string, priority Priority) (Board, error) {
	if err := requireText("content", content); err != nil {
		return b, err
	}
	ci, ti, err := locate(b, columnID, taskID)
	if err != nil {
		return b, err
	}

	next := b.Clone()
	task := &next.Columns[ci].Items[ti]
	task.Content = content
	task.Priority = ParsePriority(string(priority))
	return next, nil
}

// DeleteTask removes a task from a column.
func (s *Store) DeleteTask(b Board, columnID, taskID string) (Board, error) {
	ci, ti, err := locate(b, columnID, taskID)
	if err != nil {
		return b, err
	}

	next := b.Clone()
	items := next.Columns[ci].Items
	next.Columns[ci].Items = append(items[:ti], items[ti+1:]...)
	return next, nil
}

// MoveTask relocates the task at srcIdx of srcCol to dstIdx of dstCol.
//
// A missing destination column, or a move onto the task's own position,
// returns b unchanged with a nil error. dstIdx is clamped to the valid
// insertion range of the destination list.
func (s *Store) MoveTask(b Board, srcCol string, srcIdx int, dstCol string, dstIdx int) (Board, error) {
	si := b.ColumnIndex(srcCol)
	if si < 0 {
		return b, &NotFoundError{Kind: KindColumn, ID: srcCol}
	}
	if srcIdx < 0 || srcIdx >= len(b.Columns[si].Items) {
		return b, ErrIndexOutOfRange
	}
	di := b.ColumnIndex(dstCol)
	if di < 0 {
		return b, nil
	}
	if si == di && srcIdx == dstIdx {
		return b, nil
	}

	next := b.Clone()
	if si == di {
		next.Columns[si].Items = Reorder(b.Columns[si].Items, srcIdx, dstIdx)
		return next, nil
	}
	next.Columns[si].Items, next.Columns[di].Items = Transfer(
		b.Columns[si].Items, srcIdx, b.Columns[di].Items, dstIdx)
	return next, nil
}

func locate(b Board, columnID, taskID string) (int, int, error) {
	ci := b.ColumnIndex(columnID)
	if ci < 0 {
		return -1, -1, &NotFoundError{Kind: KindColumn, ID: columnID}
	}
	ti := b.Columns[ci].IndexOf(taskID)
	if ti < 0 {
		return -1, -1, &NotFoundError{Kind: KindTask, ID: taskID}
	}
	return ci, ti, nil
}
