package entity

// GameState is a read-only snapshot of a game. Board is a copy.
type GameState struct {
	ID         string          `json:"id"`
	Board      [BoardSize]Cell `json:"board"`
	Current    Player          `json:"current"`
	MovesCount int             `json:"moves_count"`
	LastResult Result          `json:"last_result,omitempty"`
	IsOver     bool            `json:"is_over"`
}

// MoveResult is the outcome of a move request.
// Reason is nil when OK is true, otherwise one of the apperror rejected-move sentinels.
type MoveResult struct {
	OK     bool
	Result Result
	Reason error
}
