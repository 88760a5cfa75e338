package game

import "fmt"

// Direction is one of the 8 movement directions, laid out like a numeric
// keypad: 1 is south-west, 9 is north-east. The center value 5 is the
// "no direction" sentinel carried by the end-turn move.
type Direction int8

const (
	SW Direction = 1
	S  Direction = 2
	SE Direction = 3
	W  Direction = 4
	// NoDirection is never a legal movement direction.
	NoDirection Direction = 5
	E           Direction = 6
	NW          Direction = 7
	N           Direction = 8
	NE          Direction = 9
)

// Directions lists the 8 real directions in dense-index order. Move
// enumeration iterates this slice, which fixes the ordering of generated
// moves.
var Directions = []Direction{SW, S, SE, W, E, NW, N, NE}

var directionNames = [10]string{SW: "SW", S: "S", SE: "SE", W: "W", NoDirection: "-", E: "E", NW: "NW", N: "N", NE: "NE"}

// denseIndexes maps each keypad value to its slot in the dense 0-7 encoding
// used by the action space. NoDirection and out-of-range values map to -1.
var denseIndexes = [10]int{-1, 0, 1, 2, 3, -1, 4, 5, 6, 7}

// Valid reports whether d is one of the 9 keypad values (NoDirection
// included).
func (d Direction) Valid() bool {
	return d >= SW && d <= NE
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
	return directionNames[d]
}

// ParseDirection is the inverse of String for the 9 keypad values, with "-"
// standing for NoDirection.
func ParseDirection(s string) (Direction, error) {
	for d := SW; d <= NE; d++ {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}

// Opposite returns the direction of opposite orientation, e.g. NE.Opposite()
// == SW. NoDirection is its own opposite.
func (d Direction) Opposite() Direction {
	return 10 - d
}

// Vector returns the unit displacement of the direction in (row, col)
// coordinates.
func (d Direction) Vector() (dRow, dCol int) {
	vec := directionVectors[d]
	return vec.dRow, vec.dCol
}

var directionVectors = [10]struct{ dRow, dCol int }{
	SW:          {-1, -1},
	S:           {-1, 0},
	SE:          {-1, 1},
	W:           {0, -1},
	NoDirection: {0, 0},
	E:           {0, 1},
	NW:          {1, -1},
	N:           {1, 0},
	NE:          {1, 1},
}

// DenseIndex returns the direction's slot in the dense 0-7 encoding
// (SW,S,SE,W,E,NW,N,NE), or -1 for NoDirection and invalid values.
func (d Direction) DenseIndex() int {
	if !d.Valid() {
		return -1
	}
	return denseIndexes[d]
}

// DirectionFromDense is the inverse of DenseIndex over [0, 8).
func DirectionFromDense(index int) (Direction, error) {
	if index < 0 || index >= len(Directions) {
		return 0, fmt.Errorf("dense direction index %d outside [0, %d)", index, len(Directions))
	}
	return Directions[index], nil
}
