package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{SW: NE, S: N, SE: NW, W: E}
	for d, opp := range pairs {
		require.Equal(t, opp, d.Opposite(), "%s should mirror to %s", d, opp)
		require.Equal(t, d, opp.Opposite(), "%s should mirror to %s", opp, d)
	}
	for _, d := range Directions {
		require.Equal(t, d, d.Opposite().Opposite(), "opposite should be an involution for %s", d)
	}
	require.Equal(t, NoDirection, NoDirection.Opposite(), "the sentinel is its own opposite")
}

func TestDirectionDenseMapping(t *testing.T) {
	for i := 0; i < 8; i++ {
		d, err := DirectionFromDense(i)
		require.NoError(t, err)
		require.Equal(t, i, d.DenseIndex(), "dense index should round-trip for %s", d)
	}

	require.Equal(t, -1, NoDirection.DenseIndex(), "the sentinel has no dense slot")
	require.Equal(t, -1, Direction(0).DenseIndex())

	_, err := DirectionFromDense(8)
	require.Error(t, err, "dense indexes stop at 7")
	_, err = DirectionFromDense(-1)
	require.Error(t, err)
}

func TestDirectionVectors(t *testing.T) {
	dRow, dCol := NE.Vector()
	require.Equal(t, 1, dRow)
	require.Equal(t, 1, dCol)

	dRow, dCol = NoDirection.Vector()
	require.Zero(t, dRow, "the sentinel does not displace")
	require.Zero(t, dCol)

	for _, d := range Directions {
		dRow, dCol := d.Vector()
		oRow, oCol := d.Opposite().Vector()
		require.Equal(t, -dRow, oRow, "%s and %s vectors should cancel", d, d.Opposite())
		require.Equal(t, -dCol, oCol, "%s and %s vectors should cancel", d, d.Opposite())
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	parsed, err := ParseDirection("-")
	require.NoError(t, err)
	require.Equal(t, NoDirection, parsed)

	for _, bad := range []string{"", "Q", "ne", "NNE", "5"} {
		_, err := ParseDirection(bad)
		require.Error(t, err, "%q should not parse as a direction", bad)
	}
}
