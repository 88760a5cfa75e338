package game

import (
	"fmt"
	"regexp"
)

// MoveType distinguishes the plain slide from the two capture styles.
type MoveType int8

const (
	Paika MoveType = iota
	Approach
	Withdrawal
)

func (t MoveType) String() string {
	switch t {
	case Paika:
		return "paika"
	case Approach:
		return "approach"
	case Withdrawal:
		return "withdrawal"
	default:
		return fmt.Sprintf("MoveType(%d)", int8(t))
	}
}

const (
	// EndTurnAction is the reserved action code for the end-turn move, one
	// past the encodings of all square/direction/type combinations.
	EndTurnAction = BoardSquares * 8 * 3
	// ActionSpaceSize counts every encodable action, end-turn included.
	ActionSpaceSize = EndTurnAction + 1
)

// Move fully specifies one action: a slide or capture from a square in a
// direction, or the end-turn sentinel closing a capturing sequence. When
// EndTurn is set the other fields are ignored during play.
type Move struct {
	From      Position
	Direction Direction
	Type      MoveType
	EndTurn   bool
}

// EndTurnMove returns the canonical end-turn sentinel. Its square, direction
// and type play no role but are pinned (I5, NE, withdrawal) so the move
// encodes and compares stably.
func EndTurnMove() Move {
	return Move{
		From:      Position{Row: BoardRows - 1, Col: BoardCols - 1},
		Direction: NE,
		Type:      Withdrawal,
		EndTurn:   true,
	}
}

// Canonical rewrites any end-turn move to the fixed sentinel so that moves
// can be compared with ==.
func (m Move) Canonical() Move {
	if m.EndTurn {
		return EndTurnMove()
	}
	return m
}

// Action encodes the move as its action-space integer:
// index*24 + denseDirection*3 + moveType, with EndTurnAction reserved for the
// end-turn sentinel. The move must carry a real direction (or be an
// end-turn); anything else is a programming error.
func (m Move) Action() int {
	if m.EndTurn {
		return EndTurnAction
	}
	dense := m.Direction.DenseIndex()
	if dense < 0 {
		panic(fmt.Sprintf("cannot encode move without a real direction: %v", m))
	}
	if !m.From.Valid() {
		panic(fmt.Sprintf("cannot encode move from off-board square: %v", m))
	}
	return m.From.Index()*24 + dense*3 + int(m.Type)
}

// MoveFromAction is the exact inverse of Action over [0, ActionSpaceSize).
func MoveFromAction(action int) (Move, error) {
	if action < 0 || action >= ActionSpaceSize {
		return Move{}, fmt.Errorf("action %d outside [0, %d)", action, ActionSpaceSize)
	}
	if action == EndTurnAction {
		return EndTurnMove(), nil
	}
	moveType := MoveType(action % 3)
	action /= 3
	direction, err := DirectionFromDense(action % 8)
	if err != nil {
		return Move{}, err
	}
	return Move{
		From:      PositionFromIndex(action / 8),
		Direction: direction,
		Type:      moveType,
	}, nil
}

// Short notation is 5 characters: square label, direction keypad digit, move
// type digit, end-turn flag. e.g. "D2910" is an approach capture from D2
// towards NE.
var movePattern = regexp.MustCompile(`^(?P<from>[a-iA-I][1-5])(?P<direction>[1-9])(?P<type>[0-2])(?P<end>[01])$`)

// ParseMove reads the 5-character short notation. Parsing is strict: any
// malformed string is rejected outright.
func ParseMove(s string) (Move, error) {
	groups := movePattern.FindStringSubmatch(s)
	if groups == nil {
		return Move{}, fmt.Errorf("malformed move %q", s)
	}
	from, err := ParsePosition(groups[1])
	if err != nil {
		return Move{}, fmt.Errorf("malformed move %q: %w", s, err)
	}
	return Move{
		From:      from,
		Direction: Direction(groups[2][0] - '0'),
		Type:      MoveType(groups[3][0] - '0'),
		EndTurn:   groups[4] == "1",
	}, nil
}

// String emits the short notation. End-turn moves always print the canonical
// sentinel form.
func (m Move) String() string {
	m = m.Canonical()
	end := 0
	if m.EndTurn {
		end = 1
	}
	return fmt.Sprintf("%s%d%d%d", m.From.Human(), int(m.Direction), int(m.Type), end)
}
