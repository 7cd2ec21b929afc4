// Package store mirrors repository state for the UI layer.
//
// Every write goes through the repository and is followed by a resync, so
// the mirror never holds state the repository does not. Listeners learn
// about resyncs through an events.EventPublisher.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/boards/internal/database"
	"github.com/thenoetrevino/boards/internal/events"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// BoardsStore is the reactive mirror of a BoardsRepository
type BoardsStore struct {
	repo        database.BoardsRepository
	eventClient events.EventPublisher

	// syncMu orders resyncs so an older snapshot never replaces a newer one
	syncMu sync.Mutex

	mu      sync.RWMutex
	boards  []*models.Board
	version int64
}

// New creates a store over repo. eventClient may be nil, in which case
// resyncs are not announced.
func New(repo database.BoardsRepository, eventClient events.EventPublisher) *BoardsStore {
	return &BoardsStore{
		repo:        repo,
		eventClient: eventClient,
		boards:      []*models.Board{},
	}
}

// Boards returns a copy of the mirrored boards
func (s *BoardsStore) Boards() []*models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneBoards(s.boards)
}

// Version counts completed resyncs
func (s *BoardsStore) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Board returns a copy of one mirrored board
func (s *BoardsStore) Board(id types.BoardID) (*models.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.boards {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return nil, false
}

// FindColumn returns a copy of the mirrored column
func (s *BoardsStore) FindColumn(id types.ColumnID) (*models.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := models.FindColumn(s.boards, id)
	if c == nil {
		return nil, false
	}
	return c.Clone(), true
}

// FindTask returns copies of the mirrored task and the column holding it
func (s *BoardsStore) FindTask(id types.TaskID) (*models.Task, *models.Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, c := models.FindTask(s.boards, id)
	if t == nil {
		return nil, nil, false
	}
	return t.Clone(), c.Clone(), true
}

// SyncBoards replaces the mirror with the repository's current state and
// announces the change
func (s *BoardsStore) SyncBoards(ctx context.Context) error {
	return s.sync(ctx, "")
}

// sync is SyncBoards with the changed board named in the event; empty
// means any board
func (s *BoardsStore) sync(ctx context.Context, boardID types.BoardID) error {
	s.syncMu.Lock()
	boards, err := s.repo.GetBoards(ctx)
	if err != nil {
		s.syncMu.Unlock()
		return fmt.Errorf("failed to sync boards: %w", err)
	}

	s.mu.Lock()
	s.boards = boards
	s.version++
	version := s.version
	s.mu.Unlock()
	s.syncMu.Unlock()

	slog.Debug("boards synced", "boards", len(boards), "version", version)

	// A failed publish never fails the write that triggered it
	_ = events.Publish(s.eventClient, events.Event{
		Type:      events.EventBoardsChanged,
		BoardID:   boardID,
		Timestamp: time.Now(),
	})
	return nil
}

// CreateBoard stores a new board and resyncs
func (s *BoardsStore) CreateBoard(ctx context.Context, board *models.Board) error {
	if err := s.repo.CreateBoard(ctx, board); err != nil {
		return err
	}
	return s.sync(ctx, board.ID)
}

// CreateBoardColumn appends a column to a board and resyncs
func (s *BoardsStore) CreateBoardColumn(ctx context.Context, boardID types.BoardID, column *models.Column) error {
	if err := s.repo.CreateBoardColumn(ctx, boardID, column); err != nil {
		return err
	}
	return s.sync(ctx, boardID)
}

// CreateBoardTask appends a task to a column and resyncs
func (s *BoardsStore) CreateBoardTask(ctx context.Context, columnID types.ColumnID, task *models.Task) error {
	if err := s.repo.CreateBoardTask(ctx, columnID, task); err != nil {
		return err
	}
	return s.sync(ctx, s.boardOf(columnID))
}

// MoveBoardTask relocates a task and resyncs
func (s *BoardsStore) MoveBoardTask(ctx context.Context, params database.MoveTaskParams) error {
	if err := s.repo.MoveBoardTask(ctx, params); err != nil {
		return err
	}

	boardID := s.boardOf(params.FromColumnID)
	if to := s.boardOf(params.ToColumnID); to != boardID {
		boardID = ""
	}
	return s.sync(ctx, boardID)
}

// boardOf looks up which mirrored board holds the column
func (s *BoardsStore) boardOf(columnID types.ColumnID) types.BoardID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.boards {
		if b.Column(columnID) != nil {
			return b.ID
		}
	}
	return ""
}
