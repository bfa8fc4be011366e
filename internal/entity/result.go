package entity

import "fmt"

// Result classifies a board: exactly one of Ongoing, Win or Draw.
// The set is closed; isResult keeps other packages from adding variants.
type Result interface {
	isResult()

	// IsTerminal reports whether the result ends the game.
	IsTerminal() bool
	String() string
}

type Ongoing struct{}

type Win struct {
	Winner Cell   `json:"winner"`
	Line   [3]int `json:"line"`
}

type Draw struct{}

func (Ongoing) isResult() {}
func (Win) isResult()     {}
func (Draw) isResult()    {}

func (Ongoing) IsTerminal() bool { return false }
func (Win) IsTerminal() bool     { return true }
func (Draw) IsTerminal() bool    { return true }

func (Ongoing) String() string { return "ongoing" }
func (Draw) String() string    { return "draw" }

func (that Win) String() string {
	return fmt.Sprintf("win %s %d-%d-%d", that.Winner, that.Line[0], that.Line[1], that.Line[2])
}
