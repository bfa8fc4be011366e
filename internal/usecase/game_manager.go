package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type boardRepo interface {
	Get() [entity.BoardSize]entity.Cell
	PlaceMark(index int, mark entity.Cell) bool
	Reset()
}

// GameManager owns turn order, the moves counter and the game-over state of one game session.
// It is not safe for concurrent use; the presentation layer serializes calls.
type GameManager struct {
	logger *slog.Logger
	board  boardRepo

	id         string
	players    [2]entity.Player
	turn       int
	movesCount int
	lastResult entity.Result
	isOver     bool
	started    bool
}

func NewGameManager(logger *slog.Logger, board boardRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		board:  board,
	}
}

// Init - starts a new game from any state. playerA moves first.
func (that *GameManager) Init(playerA, playerB entity.Player) {
	that.board.Reset()

	that.id = uuid.NewString()
	that.players = [2]entity.Player{playerA, playerB}
	that.turn = 0
	that.movesCount = 0
	that.lastResult = nil
	that.isOver = false
	that.started = true

	that.logger.Info("game started",
		"gameID", that.id,
		"first", playerA.Name, "firstMark", playerA.Mark,
		"second", playerB.Name, "secondMark", playerB.Mark,
	)
}

// MakeMove - places the current player's mark on cell index.
// A rejected move leaves the state untouched and reports why in Reason.
func (that *GameManager) MakeMove(index int) entity.MoveResult {
	log := that.logger.With("method", "MakeMove", "gameID", that.id, "cell", index)

	if !that.started {
		return that.reject(log, entity.Ongoing{}, apperror.ErrGameIsNotStarted)
	}

	if that.isOver {
		return that.reject(log, that.lastResult, apperror.ErrGameFinished)
	}

	player := that.players[that.turn]
	if !that.board.PlaceMark(index, player.Mark) {
		return that.reject(log, entity.Ongoing{}, placementError(index))
	}

	that.movesCount++

	result := tictactoe.Evaluate(that.board.Get())
	switch result.(type) {
	case entity.Win, entity.Draw:
		that.lastResult = result
		that.isOver = true

		log.Info("game over", "result", result.String(), "moves", that.movesCount)
	case entity.Ongoing:
		that.turn ^= 1

		log.Debug("move accepted", "player", player.Name, "mark", player.Mark)
	}

	return entity.MoveResult{OK: true, Result: result}
}

// CurrentPlayer - returns the player due to move. After game over it's the player who made the last move.
func (that *GameManager) CurrentPlayer() entity.Player {
	return that.players[that.turn]
}

func (that *GameManager) GameState() entity.GameState {
	return entity.GameState{
		ID:         that.id,
		Board:      that.board.Get(),
		Current:    that.CurrentPlayer(),
		MovesCount: that.movesCount,
		LastResult: that.lastResult,
		IsOver:     that.isOver,
	}
}

// Players returns both players in turn order.
func (that *GameManager) Players() [2]entity.Player {
	return that.players
}

func (that *GameManager) reject(log *slog.Logger, result entity.Result, reason error) entity.MoveResult {
	log.Debug("move rejected", "reason", reason)

	return entity.MoveResult{OK: false, Result: result, Reason: reason}
}

func placementError(index int) error {
	if index < 0 || index >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
}
