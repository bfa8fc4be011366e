package entity

// Cell is the content of a single board square.
type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

// BoardSize - number of cells on the board.
const BoardSize = 9

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// IsMark reports whether the cell holds one of the two player marks.
func (that Cell) IsMark() bool {
	return that == PlayerX || that == PlayerO
}
