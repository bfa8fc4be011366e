package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	commandMove    = "move"
	commandRestart = "restart"
	commandBoard   = "board"
	commandState   = "state"
	commandHelp    = "help"
	commandQuit    = "quit"
	commandExit    = "exit"
)

var errQuit = errors.New("quit requested")

type gameManager interface {
	Init(playerA, playerB entity.Player)
	MakeMove(index int) entity.MoveResult
	GameState() entity.GameState
}

// Console is a hot-seat front end: both players type their moves into the same input.
type Console struct {
	logger *slog.Logger
	game   gameManager

	in          *bufio.Scanner
	out         io.Writer
	clearScreen bool

	handlers map[string]func(args []string) error
}

func New(logger *slog.Logger, game gameManager, in io.Reader, out io.Writer, clearScreen bool) *Console {
	console := &Console{
		logger:      logger.With("component", "console"),
		game:        game,
		in:          bufio.NewScanner(in),
		out:         out,
		clearScreen: clearScreen,

		handlers: make(map[string]func(args []string) error),
	}

	console.handlers[commandMove] = console.handleMove
	console.handlers[commandRestart] = console.handleRestart
	console.handlers[commandBoard] = console.handleBoard
	console.handlers[commandState] = console.handleState
	console.handlers[commandHelp] = console.handleHelp
	console.handlers[commandQuit] = console.handleQuit
	console.handlers[commandExit] = console.handleQuit

	return console
}

// Start - asks for player names and runs the command loop until quit, end of input or ctx is done.
func (that *Console) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	if err := that.newGame(); err != nil {
		if errors.Is(err, io.EOF) {
			log.Info("input closed before the game started")
			return nil
		}

		return fmt.Errorf("failed to start game: %w", err)
	}

	if err := that.handleCommands(ctx); err != nil {
		return err
	}

	log.Info("console stopped")

	return nil
}

// handleCommands - reads commands line by line and dispatches them to handlers.
func (that *Console) handleCommands(ctx context.Context) error {
	log := that.logger.With("method", "handleCommands")

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := that.readLine()
		if errors.Is(err, io.EOF) {
			return that.println("Bye!")
		}

		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		name, args := parseCommand(line)
		if name == "" {
			continue
		}

		handler, ok := that.handlers[name]
		if !ok {
			log.Debug("unknown command", "command", name)

			if err = that.printf("Unknown command %q. Type %q for the list of commands.\n", name, commandHelp); err != nil {
				return err
			}

			continue
		}

		if err = handler(args); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}

			return fmt.Errorf("failed to handle %s: %w", name, err)
		}
	}
}

// parseCommand - a bare number is shorthand for "move N".
func parseCommand(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	name := strings.ToLower(fields[0])
	if _, err := strconv.Atoi(name); err == nil {
		return commandMove, fields
	}

	return name, fields[1:]
}

func (that *Console) newGame() error {
	nameX, err := that.ask("Player X name (leave empty for default): ")
	if err != nil {
		return err
	}

	nameO, err := that.ask("Player O name (leave empty for default): ")
	if err != nil {
		return err
	}

	that.game.Init(entity.NewPlayer(nameX, entity.PlayerX), entity.NewPlayer(nameO, entity.PlayerO))

	return that.render()
}

func (that *Console) ask(question string) (string, error) {
	if err := that.printf("%s", question); err != nil {
		return "", err
	}

	return that.readLine()
}

func (that *Console) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Console) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (that *Console) println(text string) error {
	return that.printf("%s\n", text)
}
