package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// MoveLimit is the half-move count at which the game is drawn. Consecutive
// captures in one turn count as a single half-move.
const MoveLimit = 44

// StartState is the canonical Fanorona opening position.
const StartState = "WWWWWWWWW/WWWWWWWWW/BWBW1BWBW/BBBBBBBBB/BBBBBBBBB W - - - 0"

// ErrGameNotOver is returned by Winner when the game still has a result
// pending.
var ErrGameNotOver = errors.New("game not over")

// LastCapture pins an in-progress capturing sequence: the square the
// capturing piece now occupies and the direction of its most recent capture.
type LastCapture struct {
	Position  Position
	Direction Direction
}

func (lc LastCapture) String() string {
	return fmt.Sprintf("%s %s", lc.Position.Human(), lc.Direction)
}

// GameState is the complete position: piece placement, side to move, the
// capturing-sequence memory and the half-move counter. It is mutated in
// place by Push and is not safe for concurrent mutation; tree-searching
// callers branch on a Copy.
type GameState struct {
	Board       [BoardRows][BoardCols]Piece
	TurnToPlay  Piece
	LastCapture *LastCapture // nil when no capture is in progress
	Visited     [BoardRows][BoardCols]bool
	HalfMoves   int
}

// NewGameState returns a state at the opening position, White to move.
func NewGameState() *GameState {
	gs := &GameState{}
	gs.Reset()
	return gs
}

// Reset puts the state back to the opening position.
func (gs *GameState) Reset() {
	start, err := ParseState(StartState)
	if err != nil {
		panic(err) // the start constant always parses
	}
	*gs = *start
}

// Copy returns a deep copy. Board and Visited are value arrays, so only the
// capture pin needs duplicating.
func (gs *GameState) Copy() *GameState {
	dup := *gs
	if gs.LastCapture != nil {
		lc := *gs.LastCapture
		dup.LastCapture = &lc
	}
	return &dup
}

// PieceAt returns the piece on a square. Off-board squares read as Empty, so
// capture-line projection can probe past the edge without crashing.
func (gs *GameState) PieceAt(pos Position) Piece {
	if !pos.Valid() {
		return Empty
	}
	return gs.Board[pos.Row][pos.Col]
}

// PieceExists reports whether any square holds the given piece.
func (gs *GameState) PieceExists(piece Piece) bool {
	for idx := 0; idx < BoardSquares; idx++ {
		pos := PositionFromIndex(idx)
		if gs.Board[pos.Row][pos.Col] == piece {
			return true
		}
	}
	return false
}

// VisitedPositions lists the squares used so far in the current capturing
// sequence, in row-major order.
func (gs *GameState) VisitedPositions() []Position {
	var positions []Position
	for idx := 0; idx < BoardSquares; idx++ {
		pos := PositionFromIndex(idx)
		if gs.Visited[pos.Row][pos.Col] {
			positions = append(positions, pos)
		}
	}
	return positions
}

// Done reports whether the position is terminal: the half-move limit has been
// reached, or either side has no pieces left.
func (gs *GameState) Done() bool {
	if gs.HalfMoves >= MoveLimit {
		return true
	}
	return !(gs.PieceExists(gs.TurnToPlay) && gs.PieceExists(gs.TurnToPlay.Other()))
}

// Winner returns the winning side once the game is over; a drawn game
// returns Empty. Asking before the game is over is refused with
// ErrGameNotOver rather than guessed.
func (gs *GameState) Winner() (Piece, error) {
	if !gs.Done() {
		return Empty, ErrGameNotOver
	}
	if gs.HalfMoves >= MoveLimit {
		return Empty, nil // draw by the half-move rule
	}
	if !gs.PieceExists(gs.TurnToPlay) {
		return gs.TurnToPlay.Other(), nil
	}
	return gs.TurnToPlay, nil
}

// String serializes the position in its canonical form: run-length encoded
// board rows, side to move, last-capture square and direction (or "- -"),
// visited squares (or "-"), half-move count. Two states are equal iff their
// canonical strings are.
func (gs *GameState) String() string {
	rows := make([]string, BoardRows)
	for row := 0; row < BoardRows; row++ {
		rows[row] = gs.rowString(row)
	}

	lastCapture := "- -"
	if gs.LastCapture != nil {
		lastCapture = gs.LastCapture.String()
	}

	visited := "-"
	if positions := gs.VisitedPositions(); len(positions) > 0 {
		labels := make([]string, len(positions))
		for i, pos := range positions {
			labels[i] = pos.Human()
		}
		visited = strings.Join(labels, ",")
	}

	return fmt.Sprintf("%s %s %s %s %d",
		strings.Join(rows, "/"), gs.TurnToPlay, lastCapture, visited, gs.HalfMoves)
}

func (gs *GameState) rowString(row int) string {
	var sb strings.Builder
	empties := 0
	for col := 0; col < BoardCols; col++ {
		piece := gs.Board[row][col]
		if piece == Empty {
			empties++
			continue
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
			empties = 0
		}
		sb.WriteString(piece.String())
	}
	if empties > 0 {
		sb.WriteString(strconv.Itoa(empties))
	}
	return sb.String()
}

// Equal compares two states by their canonical strings.
func (gs *GameState) Equal(other *GameState) bool {
	return gs.String() == other.String()
}

// ParseState reads a canonical position string. Malformed input is rejected;
// the parser never substitutes a default position.
func ParseState(s string) (*GameState, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, fmt.Errorf("state %q: want 6 fields, got %d", s, len(fields))
	}

	gs := &GameState{}
	if err := parseBoard(gs, fields[0]); err != nil {
		return nil, fmt.Errorf("state %q: %w", s, err)
	}

	switch fields[1] {
	case "W":
		gs.TurnToPlay = White
	case "B":
		gs.TurnToPlay = Black
	default:
		return nil, fmt.Errorf("state %q: invalid side to move %q", s, fields[1])
	}

	switch {
	case fields[2] == "-" && fields[3] == "-":
		// no capture in progress
	case fields[2] != "-" && fields[3] != "-":
		pos, err := ParsePosition(fields[2])
		if err != nil {
			return nil, fmt.Errorf("state %q: last capture: %w", s, err)
		}
		dir, err := ParseDirection(fields[3])
		if err != nil {
			return nil, fmt.Errorf("state %q: last capture: %w", s, err)
		}
		gs.LastCapture = &LastCapture{Position: pos, Direction: dir}
	default:
		return nil, fmt.Errorf("state %q: last-capture square and direction must both be set or both be %q", s, "-")
	}

	if fields[4] != "-" {
		for _, label := range strings.Split(fields[4], ",") {
			pos, err := ParsePosition(label)
			if err != nil {
				return nil, fmt.Errorf("state %q: visited list: %w", s, err)
			}
			gs.Visited[pos.Row][pos.Col] = true
		}
	}

	halfMoves, err := strconv.Atoi(fields[5])
	if err != nil || halfMoves < 0 {
		return nil, fmt.Errorf("state %q: invalid half-move count %q", s, fields[5])
	}
	gs.HalfMoves = halfMoves

	return gs, nil
}

func parseBoard(gs *GameState, boardStr string) error {
	rows := strings.Split(boardStr, "/")
	if len(rows) != BoardRows {
		return fmt.Errorf("want %d board rows, got %d", BoardRows, len(rows))
	}
	for row, rowStr := range rows {
		col := 0
		for _, ch := range rowStr {
			switch {
			case ch == 'W' || ch == 'B':
				if col >= BoardCols {
					return fmt.Errorf("row %d overflows %d columns", row+1, BoardCols)
				}
				if ch == 'W' {
					gs.Board[row][col] = White
				} else {
					gs.Board[row][col] = Black
				}
				col++
			case ch >= '1' && ch <= '9':
				col += int(ch - '0') // runs of empty squares
			default:
				return fmt.Errorf("row %d: invalid character %q", row+1, ch)
			}
		}
		if col != BoardCols {
			return fmt.Errorf("row %d covers %d columns, want %d", row+1, col, BoardCols)
		}
	}
	return nil
}

// Hash returns an fnv64a digest of the position, capturing-sequence state
// included. Equal states hash equally; it is not a substitute for Equal.
func (gs *GameState) Hash() uint64 {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.TurnToPlay))
	for idx := 0; idx < BoardSquares; idx++ {
		pos := PositionFromIndex(idx)
		binary.Write(hasher, binary.LittleEndian, int64(gs.Board[pos.Row][pos.Col]))
		binary.Write(hasher, binary.LittleEndian, gs.Visited[pos.Row][pos.Col])
	}
	if gs.LastCapture != nil {
		binary.Write(hasher, binary.LittleEndian, int64(gs.LastCapture.Position.Index()))
		binary.Write(hasher, binary.LittleEndian, int64(gs.LastCapture.Direction))
	} else {
		binary.Write(hasher, binary.LittleEndian, int64(-1))
	}
	binary.Write(hasher, binary.LittleEndian, int64(gs.HalfMoves))

	return hasher.Sum64()
}
