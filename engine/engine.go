package engine

import "fanorona/game"

// MaxMoves caps the number of individual pushes in one game as a safety net.
// The half-move draw rule ends any real game far earlier.
const MaxMoves = 1000

// Player supplies the next move for one side. ChooseMove receives a copy of
// the current position and the legal moves for it, and must return one of
// them.
type Player interface {
	Name() string
	ChooseMove(state *game.GameState, legal []game.Move) (game.Move, error)
}

// Update records one applied push in the engine's history.
type Update struct {
	Move  game.Move
	State string // canonical position after the move
	Hash  uint64
}
