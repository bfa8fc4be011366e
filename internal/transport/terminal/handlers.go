package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const helpText = `Commands:
  1-9 or move N   put your mark on cell N
  restart         start a new game with new names
  board           show the board
  state           show the game summary
  help            show this help
  quit, exit      leave the game
`

func (that *Console) handleMove(args []string) error {
	log := that.logger.With("method", "handleMove")

	if len(args) != 1 {
		return that.println("Usage: move N, where N is a cell from 1 to 9.")
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		log.Debug("not a number", "input", args[0])
		return that.printf("%v: %q is not a cell number.\n", apperror.ErrInvalidInput, args[0])
	}

	result := that.game.MakeMove(number - 1)
	if !result.OK {
		return that.printRejected(number, result.Reason)
	}

	log.Debug("move made", "cell", number, "result", result.Result.String())

	return that.render()
}

// handleRestart - starts over with new names; the board is cleared by Init.
func (that *Console) handleRestart(_ []string) error {
	if err := that.newGame(); err != nil {
		if errors.Is(err, io.EOF) {
			return errQuit
		}

		return err
	}

	return nil
}

func (that *Console) handleBoard(_ []string) error {
	return that.render()
}

func (that *Console) handleState(_ []string) error {
	state := that.game.GameState()

	status := "in progress"
	if state.IsOver {
		status = "over (" + state.LastResult.String() + ")"
	}

	return that.printf("Game %s: %s, moves made: %d, next: %s (%s)\n",
		state.ID, status, state.MovesCount, state.Current.Name, state.Current.Mark)
}

func (that *Console) handleHelp(_ []string) error {
	return that.printf("%s", helpText)
}

func (that *Console) handleQuit(_ []string) error {
	if err := that.println("Bye!"); err != nil {
		return err
	}

	return errQuit
}

func (that *Console) printRejected(number int, reason error) error {
	switch {
	case errors.Is(reason, apperror.ErrGameFinished):
		return that.printf("The game is over. Type %q to play again.\n", commandRestart)
	case errors.Is(reason, apperror.ErrGameIsNotStarted):
		return that.printf("No game in progress. Type %q to start one.\n", commandRestart)
	case errors.Is(reason, apperror.ErrInvalidCell):
		return that.printf("Cell %d does not exist, pick a cell from 1 to 9.\n", number)
	case errors.Is(reason, apperror.ErrCellOccupied):
		return that.printf("Cell %d is already taken.\n", number)
	default:
		return that.printf("Move rejected: %v\n", reason)
	}
}

// describeResult - the line shown under the board.
func describeResult(state entity.GameState) string {
	switch result := state.LastResult.(type) {
	case entity.Win:
		name := string(result.Winner)
		if state.Current.Mark == result.Winner {
			name = state.Current.Name
		}

		return fmt.Sprintf("%s (%s) wins! Line: %d-%d-%d", name, result.Winner,
			result.Line[0]+1, result.Line[1]+1, result.Line[2]+1)
	case entity.Draw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("%s (%s), your move [1-9]:", state.Current.Name, state.Current.Mark)
	}
}
