package game

// Piece is the content of a single board intersection. The zero value is
// Empty, so a zeroed board is an empty board.
type Piece int8

const (
	Empty Piece = iota
	White
	Black
)

func (p Piece) String() string {
	switch p {
	case White:
		return "W"
	case Black:
		return "B"
	default:
		return "E"
	}
}

// Other returns the opposing color. Asking for the opponent of Empty is a
// programming error.
func (p Piece) Other() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		panic("no opponent for an empty square")
	}
}
