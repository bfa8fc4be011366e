package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-hotseat/testing/suite"
)

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

func lines(input ...string) *strings.Reader {
	return strings.NewReader(strings.Join(input, "\n") + "\n")
}

func newConsole(t *testing.T, input *strings.Reader) (context.Context, *Console, *usecase.GameManager, *bytes.Buffer) {
	t.Helper()

	ctx, st := suite.New(t)
	manager := usecase.NewGameManager(st.Logger, st.Board)
	out := &bytes.Buffer{}

	return ctx, New(st.Logger, manager, input, out, false), manager, out
}

func TestConsole_Start(t *testing.T) {
	t.Run("Plays a game to a win", func(t *testing.T) {
		// Given: two named players and moves that give X the top row
		ctx, console, manager, out := newConsole(t, lines("Alice", "Bob", "1", "5", "2", "9", "3"))

		// When: running the console until the input ends
		err := console.Start(ctx)

		// Then: the win is announced with 1-based cell numbers
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Alice (X), your move [1-9]:")
		assert.Contains(t, out.String(), "Bob (O), your move [1-9]:")
		assert.Contains(t, out.String(), "Alice (X) wins! Line: 1-2-3")
		assert.Contains(t, out.String(), `Type "restart" to play again`)
		assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"))

		state := manager.GameState()
		assert.True(t, state.IsOver)
		assert.Equal(t, 5, state.MovesCount)
	})

	t.Run("Plays a game to a draw", func(t *testing.T) {
		// Given: moves that fill the board without a line
		ctx, console, manager, out := newConsole(t, lines("", "", "1", "2", "3", "5", "4", "6", "8", "7", "move 9"))

		// When: running the console
		err := console.Start(ctx)

		// Then: the draw is announced
		require.NoError(t, err)
		assert.Contains(t, out.String(), "It's a draw!")
		assert.Equal(t, entity.Draw{}, manager.GameState().LastResult)
	})

	t.Run("Blank names use the defaults", func(t *testing.T) {
		// Given: both names left empty
		ctx, console, _, out := newConsole(t, lines("", "   "))

		// When: running the console
		err := console.Start(ctx)

		// Then: X is prompted under the default label
		require.NoError(t, err)
		assert.Contains(t, out.String(), entity.DefaultNameX+" (X), your move [1-9]:")
	})

	t.Run("Input closed before names ends quietly", func(t *testing.T) {
		// Given: no input at all
		ctx, console, manager, _ := newConsole(t, strings.NewReader(""))

		// When: running the console
		err := console.Start(ctx)

		// Then: nothing fails and no game was started
		require.NoError(t, err)
		assert.Empty(t, manager.GameState().ID)
	})

	t.Run("Quit stops before the input ends", func(t *testing.T) {
		// Given: a quit followed by a move
		ctx, console, manager, out := newConsole(t, lines("A", "B", "quit", "5"))

		// When: running the console
		err := console.Start(ctx)

		// Then: the move after quit is never read
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Bye!")
		assert.Zero(t, manager.GameState().MovesCount)
	})

	t.Run("Cancelled context stops the loop", func(t *testing.T) {
		// Given: a context that is already cancelled
		_, console, manager, _ := newConsole(t, lines("A", "B", "5"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: running the console
		err := console.Start(ctx)

		// Then: the game is set up but no command runs
		require.NoError(t, err)
		assert.NotEmpty(t, manager.GameState().ID)
		assert.Zero(t, manager.GameState().MovesCount)
	})

	t.Run("Write failures are returned", func(t *testing.T) {
		// Given: an output that always fails
		ctx, st := suite.New(t)
		manager := usecase.NewGameManager(st.Logger, st.Board)
		console := New(st.Logger, manager, lines("A", "B"), failingWriter{}, false)

		// When: running the console
		err := console.Start(ctx)

		// Then: the write error is reported
		require.ErrorIs(t, err, errBrokenPipe)
	})
}

func TestConsole_RejectedMoves(t *testing.T) {
	t.Run("Occupied cell", func(t *testing.T) {
		// Given: O tries the cell X just took
		ctx, console, manager, out := newConsole(t, lines("A", "B", "5", "5"))

		// When: running the console
		require.NoError(t, console.Start(ctx))

		// Then: the rejection is explained and O keeps the turn
		assert.Contains(t, out.String(), "Cell 5 is already taken.")
		assert.Equal(t, entity.PlayerO, manager.GameState().Current.Mark)
	})

	t.Run("Cell outside the board", func(t *testing.T) {
		// Given: cells 0 and 10 do not exist
		ctx, console, manager, out := newConsole(t, lines("A", "B", "0", "move 10"))

		// When: running the console
		require.NoError(t, console.Start(ctx))

		// Then: both moves are rejected
		assert.Contains(t, out.String(), "Cell 0 does not exist")
		assert.Contains(t, out.String(), "Cell 10 does not exist")
		assert.Zero(t, manager.GameState().MovesCount)
	})

	t.Run("Not a number", func(t *testing.T) {
		// Given: a move with text instead of a number
		ctx, console, _, out := newConsole(t, lines("A", "B", "move five", "move"))

		// When: running the console
		require.NoError(t, console.Start(ctx))

		// Then: the input is reported as invalid and usage is shown
		assert.Contains(t, out.String(), `invalid input: "five" is not a cell number.`)
		assert.Contains(t, out.String(), "Usage: move N")
	})

	t.Run("Move after game over", func(t *testing.T) {
		// Given: X already won
		ctx, console, manager, out := newConsole(t, lines("A", "B", "1", "5", "2", "9", "3", "4"))

		// When: running the console
		require.NoError(t, console.Start(ctx))

		// Then: the extra move is refused and the board stays as it was
		assert.Contains(t, out.String(), `The game is over. Type "restart" to play again.`)
		assert.Equal(t, entity.EmptyCell, manager.GameState().Board[3])
	})
}

func TestConsole_Commands(t *testing.T) {
	t.Run("Restart starts a new game with new names", func(t *testing.T) {
		// Given: a finished game followed by a restart
		ctx, console, manager, out := newConsole(t, lines("A", "B", "1", "5", "2", "9", "3", "restart", "Carol", "", "7"))

		// When: running the console
		require.NoError(t, console.Start(ctx))

		// Then: the new game uses the new names and accepts moves
		state := manager.GameState()
		assert.False(t, state.IsOver)
		assert.Equal(t, 1, state.MovesCount)
		assert.Equal(t, entity.PlayerX, state.Board[6])
		assert.Equal(t, entity.NewPlayer("", entity.PlayerO), state.Current)
		assert.Contains(t, out.String(), "Carol (X), your move [1-9]:")
	})

	t.Run("Restart interrupted by end of input", func(t *testing.T) {
		// Given: input ends while names are asked again
		ctx, console, _, _ := newConsole(t, lines("A", "B", "restart"))

		// When: running the console
		err := console.Start(ctx)

		// Then: the console stops without error
		require.NoError(t, err)
	})

	t.Run("State, board, help and unknown commands", func(t *testing.T) {
		// Given: informational commands in mixed case
		ctx, console, manager, out := newConsole(t, lines("A", "B", "5", "STATE", "Board", "help", "dance"))

		// When: running the console
		require.NoError(t, console.Start(ctx))

		// Then: each command prints its output
		state := manager.GameState()
		assert.Contains(t, out.String(), "Game "+state.ID+": in progress, moves made: 1, next: B (O)")
		assert.Contains(t, out.String(), " 1 | 2 | 3 \n---+---+---\n 4 | X | 6 ")
		assert.Contains(t, out.String(), "Commands:")
		assert.Contains(t, out.String(), `Unknown command "dance".`)
	})
}

func TestRenderBoard(t *testing.T) {
	t.Run("Empty board shows cell numbers", func(t *testing.T) {
		expected := " 1 | 2 | 3 \n---+---+---\n 4 | 5 | 6 \n---+---+---\n 7 | 8 | 9 \n"

		assert.Equal(t, expected, renderBoard([entity.BoardSize]entity.Cell{}))
	})

	t.Run("Marks replace numbers", func(t *testing.T) {
		board := [entity.BoardSize]entity.Cell{entity.PlayerX, "", "", "", entity.PlayerO, "", "", "", entity.PlayerX}
		expected := " X | 2 | 3 \n---+---+---\n 4 | O | 6 \n---+---+---\n 7 | 8 | X \n"

		assert.Equal(t, expected, renderBoard(board))
	})
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		name string
		args []string
	}{
		{line: "", name: "", args: nil},
		{line: "   ", name: "", args: nil},
		{line: "5", name: commandMove, args: []string{"5"}},
		{line: "move 5", name: commandMove, args: []string{"5"}},
		{line: "ReStArT", name: commandRestart, args: []string{}},
		{line: "-1", name: commandMove, args: []string{"-1"}},
	}

	for _, tt := range tests {
		name, args := parseCommand(tt.line)

		assert.Equal(t, tt.name, name, "line %q", tt.line)
		assert.Equal(t, tt.args, args, "line %q", tt.line)
	}
}

func TestConsole_ClearScreen(t *testing.T) {
	// Given: a console with screen clearing enabled
	ctx, st := suite.New(t)
	manager := usecase.NewGameManager(st.Logger, st.Board)
	out := &bytes.Buffer{}
	console := New(st.Logger, manager, lines("A", "B"), out, true)

	// When: running the console
	require.NoError(t, console.Start(ctx))

	// Then: the clear sequence precedes the board
	assert.Contains(t, out.String(), clearSequence+"\n 1 | 2 | 3 ")
}
