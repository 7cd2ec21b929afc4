// Package api serves the boards store over a JSON HTTP API
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thenoetrevino/boards/internal/database"
	"github.com/thenoetrevino/boards/internal/events"
	"github.com/thenoetrevino/boards/internal/models"
	"github.com/thenoetrevino/boards/internal/types"
)

// Store is the part of store.BoardsStore the API reads and writes through
type Store interface {
	Boards() []*models.Board
	Board(id types.BoardID) (*models.Board, bool)
	FindColumn(id types.ColumnID) (*models.Column, bool)
	CreateBoard(ctx context.Context, board *models.Board) error
	CreateBoardColumn(ctx context.Context, boardID types.BoardID, column *models.Column) error
	CreateBoardTask(ctx context.Context, columnID types.ColumnID, task *models.Task) error
	MoveBoardTask(ctx context.Context, params database.MoveTaskParams) error
}

// Register wires up all API routes on the provided Echo instance.
// listener may be nil, in which case /api/events is not served.
func Register(e *echo.Echo, store Store, listener events.EventPublisher, metrics *Metrics) {
	if metrics == nil {
		metrics = NewMetrics()
	}

	e.GET("/healthz", healthz())
	e.GET("/api/metrics", getMetrics(metrics))
	e.GET("/api/boards", getBoards(store))
	e.POST("/api/boards", postBoard(store))
	e.POST("/api/boards/:boardID/columns", postColumn(store))
	e.POST("/api/columns/:columnID/tasks", postTask(store))
	e.POST("/api/tasks/move", postMove(store, metrics))
	if listener != nil {
		e.GET("/api/events", streamEvents(listener, metrics))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type createBoardRequest struct {
	Name string `json:"name"`
}

type createColumnRequest struct {
	Name string `json:"name"`
}

type createTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func getBoards(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, store.Boards())
	}
}

func postBoard(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createBoardRequest
		if err := c.Bind(&req); err != nil {
			return writeError(c, http.StatusBadRequest, "invalid body")
		}

		board := models.NewBoard(req.Name)
		if err := store.CreateBoard(c.Request().Context(), board); err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusCreated, board)
	}
}

func postColumn(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		boardID := types.BoardID(c.Param("boardID"))
		if err := boardID.Validate(); err != nil {
			return storeError(c, err)
		}

		var req createColumnRequest
		if err := c.Bind(&req); err != nil {
			return writeError(c, http.StatusBadRequest, "invalid body")
		}

		// The store ignores unknown boards; callers over HTTP get a 404
		if _, ok := store.Board(boardID); !ok {
			return writeError(c, http.StatusNotFound, fmt.Sprintf("board %s not found", boardID))
		}

		column := models.NewColumn(req.Name)
		if err := store.CreateBoardColumn(c.Request().Context(), boardID, column); err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusCreated, column)
	}
}

func postTask(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		columnID := types.ColumnID(c.Param("columnID"))
		if err := columnID.Validate(); err != nil {
			return storeError(c, err)
		}

		var req createTaskRequest
		if err := c.Bind(&req); err != nil {
			return writeError(c, http.StatusBadRequest, "invalid body")
		}

		if _, ok := store.FindColumn(columnID); !ok {
			return writeError(c, http.StatusNotFound, fmt.Sprintf("column %s not found", columnID))
		}

		task := models.NewTask(req.Name, req.Description)
		if err := store.CreateBoardTask(c.Request().Context(), columnID, task); err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusCreated, task)
	}
}

// postMove answers 204 for lookup misses too; the move is then a no-op
func postMove(store Store, metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		var params database.MoveTaskParams
		if err := c.Bind(&params); err != nil {
			return writeError(c, http.StatusBadRequest, "invalid body")
		}

		if err := store.MoveBoardTask(c.Request().Context(), params); err != nil {
			return storeError(c, err)
		}
		metrics.MovesTotal.Add(1)
		return c.NoContent(http.StatusNoContent)
	}
}

// streamEvents relays change events as server-sent events until the
// client disconnects
func streamEvents(listener events.EventPublisher, metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		ch, err := listener.Listen(ctx)
		if err != nil {
			return writeError(c, http.StatusServiceUnavailable, err.Error())
		}

		metrics.StreamClients.Add(1)
		defer metrics.StreamClients.Add(-1)

		c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
		c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
		c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
		c.Response().Header().Set("X-Accel-Buffering", "no")
		c.Response().WriteHeader(http.StatusOK)
		c.Response().Flush()

		for {
			select {
			case <-ctx.Done():
				return nil
			case evt, ok := <-ch:
				if !ok {
					return nil
				}
				data, err := json.Marshal(evt)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(c.Response(), "event: %s\ndata: %s\n\n", evt.Type, data); err != nil {
					return nil
				}
				c.Response().Flush()
				metrics.EventsStreamed.Add(1)
			}
		}
	}
}

// storeError maps validation errors to 400 and duplicates to 409
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, database.ErrDuplicateID):
		return writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, types.ErrInvalidID),
		errors.Is(err, models.ErrEmptyName),
		errors.Is(err, models.ErrNameTooLong),
		errors.Is(err, database.ErrInvalidMoveType),
		errors.Is(err, database.ErrMissingTargetTask):
		return writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled):
		return writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		slog.Error("api request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err)
		return writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeError(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorResponse{Error: msg})
}
