package terminal

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	clearSequence = "\033[H\033[2J"
	rowSeparator  = "---+---+---\n"
)

// renderBoard draws the grid; empty cells show the number to type for them.
func renderBoard(board [entity.BoardSize]entity.Cell) string {
	var builder strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			builder.WriteString(rowSeparator)
		}

		for col := 0; col < 3; col++ {
			index := row*3 + col
			if col > 0 {
				builder.WriteString("|")
			}

			symbol := string(board[index])
			if board[index].IsEmpty() {
				symbol = strconv.Itoa(index + 1)
			}

			builder.WriteString(" " + symbol + " ")
		}

		builder.WriteString("\n")
	}

	return builder.String()
}

func (that *Console) render() error {
	state := that.game.GameState()

	if that.clearScreen {
		if err := that.printf("%s", clearSequence); err != nil {
			return err
		}
	}

	if err := that.printf("\n%s\n%s\n", renderBoard(state.Board), describeResult(state)); err != nil {
		return err
	}

	if state.IsOver {
		return that.printf("Type %q to play again or %q to leave.\n", commandRestart, commandQuit)
	}

	return nil
}
