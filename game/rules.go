package game

import (
	"fmt"
	"slices"
)

// rule identifies one legality check. Checks run in declaration order; a
// candidate move is legal when every applicable check passes.
type rule uint8

const (
	ruleBounds rule = iota
	ruleOwnPiece
	ruleDirection
	ruleEmptyDestination
	ruleCaptureLine
	rulePinnedPiece
	ruleNoRevisit
	ruleNoSameDirection
	ruleMandatoryCapture
	ruleCount
)

// ruleSet is a bitmask of checks to bypass. The only user is the
// any-capture probe, which has to skip the mandatory-capture rule to avoid
// recursing into itself.
type ruleSet uint16

func (rs ruleSet) skips(r rule) bool {
	return rs&(1<<r) != 0
}

const (
	skipNone             ruleSet = 0
	skipMandatoryCapture         = ruleSet(1) << ruleMandatoryCapture
)

// captureMoveTypes fixes approach-before-withdrawal enumeration order.
var captureMoveTypes = []MoveType{Approach, Withdrawal}

// IsValid reports whether the move is legal in the current position. It is
// total: any well-formed Move, including one pointing off the board, yields
// a clean true or false without panicking.
func (gs *GameState) IsValid(m Move) bool {
	if gs.Done() {
		return false
	}
	return gs.validate(m, skipNone)
}

func (gs *GameState) validate(m Move, skip ruleSet) bool {
	if m.EndTurn {
		// Ending the turn is only meaningful inside a capturing sequence.
		return gs.LastCapture != nil
	}

	to := m.From.Displace(m.Direction)

	// The capture projection starts one step beyond the destination for an
	// approach, one step behind the origin for a withdrawal.
	var captureStart Position
	switch m.Type {
	case Approach:
		captureStart = to.Displace(m.Direction)
	case Withdrawal:
		captureStart = m.From.Displace(m.Direction.Opposite())
	}

	for r := rule(0); r < ruleCount; r++ {
		if skip.skips(r) {
			continue
		}
		ok := true
		switch r {
		case ruleBounds:
			ok = m.From.Valid() && to.Valid()
		case ruleOwnPiece:
			ok = gs.PieceAt(m.From) == gs.TurnToPlay
		case ruleDirection:
			ok = slices.Contains(m.From.ValidDirections(), m.Direction)
		case ruleEmptyDestination:
			ok = gs.PieceAt(to) == Empty
		case ruleCaptureLine:
			// A capturing line must begin with an enemy piece immediately
			// adjacent, not an empty gap or the board edge.
			if m.Type != Paika {
				ok = captureStart.Valid() && gs.PieceAt(captureStart) == gs.TurnToPlay.Other()
			}
		case rulePinnedPiece:
			// Only the piece that captured may continue the sequence.
			if gs.LastCapture != nil {
				ok = m.From == gs.LastCapture.Position
			}
		case ruleNoRevisit:
			if gs.LastCapture != nil {
				ok = !gs.Visited[to.Row][to.Col]
			}
		case ruleNoSameDirection:
			if gs.LastCapture != nil {
				ok = m.Direction != gs.LastCapture.Direction
			}
		case ruleMandatoryCapture:
			// A paika is illegal whenever any capture is available, and
			// always illegal mid-sequence.
			if m.Type == Paika {
				ok = gs.LastCapture == nil && !gs.captureExists()
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// captureExists reports whether the side to move has any capturing move on
// the whole board.
func (gs *GameState) captureExists() bool {
	for idx := 0; idx < BoardSquares; idx++ {
		from := PositionFromIndex(idx)
		if gs.PieceAt(from) != gs.TurnToPlay {
			continue
		}
		for _, dir := range Directions {
			for _, t := range captureMoveTypes {
				if gs.validate(Move{From: from, Direction: dir, Type: t}, skipMandatoryCapture) {
					return true
				}
			}
		}
	}
	return false
}

// LegalMoves enumerates every legal move in a deterministic order: during a
// capturing sequence, the pinned piece's continuations (dense direction
// order, approach before withdrawal) followed by end-turn; otherwise all
// captures in row-major square order, falling back to paikas only when no
// capture exists anywhere. Terminal positions have no legal moves.
func (gs *GameState) LegalMoves() []Move {
	if gs.Done() {
		return nil
	}

	if gs.LastCapture != nil {
		moves := gs.captureMovesFrom(gs.LastCapture.Position)
		return append(moves, EndTurnMove())
	}

	var captures []Move
	for idx := 0; idx < BoardSquares; idx++ {
		from := PositionFromIndex(idx)
		if gs.PieceAt(from) != gs.TurnToPlay {
			continue
		}
		captures = append(captures, gs.captureMovesFrom(from)...)
	}
	if len(captures) > 0 { // capture is mandatory when available
		return captures
	}

	var paikas []Move
	for idx := 0; idx < BoardSquares; idx++ {
		from := PositionFromIndex(idx)
		if gs.PieceAt(from) != gs.TurnToPlay {
			continue
		}
		for _, dir := range Directions {
			m := Move{From: from, Direction: dir, Type: Paika}
			if gs.validate(m, skipMandatoryCapture) {
				paikas = append(paikas, m)
			}
		}
	}
	return paikas
}

func (gs *GameState) captureMovesFrom(from Position) []Move {
	var moves []Move
	for _, dir := range Directions {
		for _, t := range captureMoveTypes {
			m := Move{From: from, Direction: dir, Type: t}
			if gs.validate(m, skipNone) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// LegalActions returns the action codes of LegalMoves, in the same order.
func (gs *GameState) LegalActions() []int {
	moves := gs.LegalMoves()
	actions := make([]int, len(moves))
	for i, m := range moves {
		actions[i] = m.Action()
	}
	return actions
}

// ActionMask flags, for every action code, whether it is currently legal.
func (gs *GameState) ActionMask() []bool {
	mask := make([]bool, ActionSpaceSize)
	for _, action := range gs.LegalActions() {
		mask[action] = true
	}
	return mask
}

// Push applies a move to the position. Callers are expected to pick from
// LegalMoves; an illegal move is rejected with an error and leaves the state
// untouched.
func (gs *GameState) Push(m Move) error {
	m = m.Canonical()
	if !gs.IsValid(m) {
		return fmt.Errorf("illegal move %s in %q", m, gs)
	}

	if m.EndTurn {
		gs.endTurn()
		return nil
	}

	to := m.From.Displace(m.Direction)
	gs.Board[to.Row][to.Col] = gs.Board[m.From.Row][m.From.Col]
	gs.Board[m.From.Row][m.From.Col] = Empty

	if m.Type == Paika {
		gs.endTurn()
		return nil
	}

	// Running capture: strip every contiguous enemy piece along the
	// projection line until an empty square, an own piece, or the edge.
	var captureDir Direction
	var capturePos Position
	if m.Type == Approach {
		captureDir = m.Direction
		capturePos = to.Displace(captureDir)
	} else {
		captureDir = m.Direction.Opposite()
		capturePos = m.From.Displace(captureDir)
	}
	enemy := gs.TurnToPlay.Other()
	for capturePos.Valid() && gs.PieceAt(capturePos) == enemy {
		gs.Board[capturePos.Row][capturePos.Col] = Empty
		capturePos = capturePos.Displace(captureDir)
	}

	gs.LastCapture = &LastCapture{Position: to, Direction: m.Direction}
	gs.Visited[m.From.Row][m.From.Col] = true
	gs.Visited[to.Row][to.Col] = true
	return nil
}

// endTurn hands play to the other side and closes any capturing sequence.
// A whole sequence counts as a single half-move.
func (gs *GameState) endTurn() {
	gs.TurnToPlay = gs.TurnToPlay.Other()
	gs.LastCapture = nil
	gs.Visited = [BoardRows][BoardCols]bool{}
	gs.HalfMoves++
}
