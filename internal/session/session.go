// Package session holds the current board for one running process.
//
// A Session owns the only mutable reference to the board. Each dispatched
// Command is applied by the pure board.Store, the result is persisted as a
// whole snapshot, and only then does it replace the current board.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/kv"
	"github.com/nibzard/kanban-go/internal/logging"
	"github.com/nibzard/kanban-go/internal/snapshot"
)

// ErrNilCommand is returned when dispatching a zero Command.
var ErrNilCommand = errors.New("session: empty command")

// Session is safe for concurrent use; dispatches are serialized.
type Session struct {
	mu     sync.Mutex
	store  *board.Store
	kv     kv.Store
	key    string
	logger *log.Logger

	current board.Board
	loaded  snapshot.LoadResult
}

// Open loads the board stored under key, falling back to the store's default
// board when the stored value is absent or unusable. An absent board is saved
// as the default; a failed save is logged and does not fail Open.
func Open(ctx context.Context, store kv.Store, key string, bs *board.Store, logger *log.Logger) (*Session, error) {
	if key == "" {
		key = snapshot.Key
	}
	if bs == nil {
		bs = board.NewStore()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	res, err := snapshot.Load(ctx, store, key, bs)
	if err != nil {
		return nil, err
	}
	switch {
	case res.Fallback && res.Reason == snapshot.ReasonAbsent:
		// Seed ids must survive into the next process, so the default board
		// is written straight away. Unusable stored values are left in place.
		if err := snapshot.Save(ctx, store, key, res.Board); err != nil {
			logger.Warn("persist default board", "key", key, "err", err)
		} else {
			logger.Debug("no stored board, saved default", "key", key)
		}
	case res.Fallback:
		logger.Warn("stored board unusable, using default", "key", key, "reason", res.Reason, "err", res.Err)
	default:
		logger.Debug("board loaded", "key", key, "columns", len(res.Board.Columns), "tasks", res.Board.TaskCount())
	}

	return &Session{
		store:   bs,
		kv:      store,
		key:     key,
		logger:  logger,
		current: res.Board,
		loaded:  res,
	}, nil
}

// Board returns a copy of the current board.
func (s *Session) Board() board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Loaded reports how the board was obtained when the session opened.
func (s *Session) Loaded() snapshot.LoadResult {
	return s.loaded
}

// Key returns the store key the session persists under.
func (s *Session) Key() string { return s.key }

// Dispatch applies cmd to the current board. A rejected command or a failed
// write leaves the current board untouched. A command that changes nothing
// is not persisted.
func (s *Session) Dispatch(ctx context.Context, cmd Command) error {
	if cmd.apply == nil {
		return ErrNilCommand
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := cmd.apply(s.store, s.current)
	if err != nil {
		s.logger.Debug("command rejected", append([]any{"op", cmd.name, "err", err}, cmd.attrs...)...)
		return err
	}
	if next.Equal(s.current) {
		s.logger.Debug("command made no change", append([]any{"op", cmd.name}, cmd.attrs...)...)
		return nil
	}
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Debug("command applied", append([]any{"op", cmd.name, "columns", len(next.Columns), "tasks", next.TaskCount()}, cmd.attrs...)...)
	return nil
}

// Reset replaces the current board with a fresh default board.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, s.store.NewDefaultBoard()); err != nil {
		return err
	}
	s.logger.Info("board reset", "key", s.key)
	return nil
}

// commit persists next and then makes it current. Callers hold s.mu.
func (s *Session) commit(ctx context.Context, next board.Board) error {
	if err := snapshot.Save(ctx, s.kv, s.key, next); err != nil {
		s.logger.Error("persist board", "key", s.key, "err", err)
		return err
	}
	s.current = next
	return nil
}
