package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// WinCombos are checked in this order; the first full line decides the winner.
var WinCombos = [8][3]int{
	// rows
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	// diagonals
	{0, 4, 8},
	{2, 4, 6},
	// columns
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
}

// Evaluate - classifies the board as a win, a draw or an ongoing game.
func Evaluate(board [entity.BoardSize]entity.Cell) entity.Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return entity.Win{Winner: a, Line: combo}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell.IsEmpty() {
			return entity.Ongoing{}
		}
	}

	return entity.Draw{}
}
