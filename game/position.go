package game

import (
	"fmt"
	"strings"
)

const (
	BoardRows = 5
	BoardCols = 9
	// BoardSquares is the number of intersections on the board.
	BoardSquares = BoardRows * BoardCols
)

// Position is an intersection on the board, with row 0 nearest White and
// col 0 on White's left. Off-board positions are representable; Valid reports
// whether one is actually on the board.
type Position struct {
	Row int
	Col int
}

// PositionFromIndex converts a flat index (row*9+col) back to a Position.
func PositionFromIndex(index int) Position {
	return Position{Row: index / BoardCols, Col: index % BoardCols}
}

// ParsePosition reads the human label of a square, column letter then row
// number, e.g. "D2". The letter is case-insensitive.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	col := strings.ToUpper(s)[0]
	row := s[1]
	if col < 'A' || col > 'I' || row < '1' || row > '5' {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	return Position{Row: int(row - '1'), Col: int(col - 'A')}, nil
}

// Valid reports whether the position is on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardRows && p.Col >= 0 && p.Col < BoardCols
}

// Index returns the flat index of the position, row*9+col.
func (p Position) Index() int {
	return p.Row*BoardCols + p.Col
}

// Human returns the label of the square, e.g. "D2".
func (p Position) Human() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("off-board(%d,%d)", p.Row, p.Col)
	}
	return p.Human()
}

// Displace adds the direction's unit vector to the position. The result may
// be off the board; callers check Valid separately.
func (p Position) Displace(d Direction) Position {
	dRow, dCol := d.Vector()
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// ValidDirections returns the directions with a drawn line from this square
// on the physical board. Off-board positions have none.
func (p Position) ValidDirections() []Direction {
	if !p.Valid() {
		return nil
	}
	return validDirections[p.Index()]
}

// validDirections is fixed by the board's geometry: diagonals exist only at
// strong intersections, which sit where row+col is even.
var validDirections [BoardSquares][]Direction

func init() {
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			validDirections[row*BoardCols+col] = buildDirections(row, col)
		}
	}
}

func buildDirections(row, col int) []Direction {
	switch {
	case row == 0 && col == 0: // White's left corner
		return []Direction{N, NE, E}
	case row == 2 && col == 0: // middle-left
		return []Direction{S, SE, E, NE, N}
	case row == 4 && col == 0: // Black's right corner
		return []Direction{S, SE, E}
	case row == 0 && col == BoardCols-1:
		return []Direction{W, NW, N}
	case row == 2 && col == BoardCols-1: // middle-right
		return []Direction{S, SW, W, NW, N}
	case row == 4 && col == BoardCols-1:
		return []Direction{S, SW, W}
	case row == 0 && col%2 == 1: // weak squares on White's back row
		return []Direction{W, N, E}
	case row == 0:
		return []Direction{W, NW, N, NE, E}
	case row == 4 && col%2 == 1: // weak squares on Black's back row
		return []Direction{W, S, E}
	case row == 4:
		return []Direction{W, SW, S, SE, E}
	case col == 0:
		return []Direction{S, E, N}
	case col == BoardCols-1:
		return []Direction{S, W, N}
	case (row+col)%2 == 0: // strong interior intersection
		return []Direction{S, SW, W, NW, N, NE, E, SE}
	default: // weak interior intersection
		return []Direction{S, W, N, E}
	}
}
