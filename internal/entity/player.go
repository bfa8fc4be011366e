package entity

import "strings"

const (
	DefaultNameX = "Player X"
	DefaultNameO = "Player O"

	defaultName = "Player"
)

type Player struct {
	Name string `json:"name"`
	Mark Cell   `json:"mark"`
}

// NewPlayer - creates a player, falling back to the default label of the mark when name is blank.
func NewPlayer(name string, mark Cell) Player {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName(mark)
	}

	return Player{
		Name: name,
		Mark: mark,
	}
}

// DefaultName returns the fixed label used for a player who did not enter a name.
func DefaultName(mark Cell) string {
	switch mark {
	case PlayerX:
		return DefaultNameX
	case PlayerO:
		return DefaultNameO
	default:
		return defaultName
	}
}
