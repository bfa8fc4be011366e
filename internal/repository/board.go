package repository

import (
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type BoardRepository interface {
	Get() [entity.BoardSize]entity.Cell
	PlaceMark(index int, mark entity.Cell) bool
	Reset()
}

type memBoard struct {
	cells [entity.BoardSize]entity.Cell
}

func NewBoardRepository() BoardRepository {
	return &memBoard{}
}

// Get - returns a copy of the cells; callers can't reach the stored array.
func (that *memBoard) Get() [entity.BoardSize]entity.Cell {
	return that.cells
}

// PlaceMark - puts mark on an empty cell. Returns false for an index outside the board,
// an occupied cell, or a value that is not a player mark.
func (that *memBoard) PlaceMark(index int, mark entity.Cell) bool {
	if index < 0 || index >= len(that.cells) {
		return false
	}

	if !mark.IsMark() || !that.cells[index].IsEmpty() {
		return false
	}

	that.cells[index] = mark

	return true
}

func (that *memBoard) Reset() {
	for i := range that.cells {
		that.cells[i] = entity.EmptyCell
	}
}
