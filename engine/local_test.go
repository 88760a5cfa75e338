package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"fanorona/game"
)

func TestScriptedOpeningExchange(t *testing.T) {
	// White opens with the D2 approach capture, black answers by capturing
	// E1 from C3; both sequences end explicitly.
	white, err := NewScriptedPlayer("white", []string{"D2910", "I5921"})
	require.NoError(t, err)
	black, err := NewScriptedPlayer("black", []string{"C3310", "I5921"})
	require.NoError(t, err)

	e := LocalEngine(white, black)
	_, _, err = e.Run()
	require.ErrorContains(t, err, "script exhausted",
		"the game goes on after both scripts run out")

	require.Len(t, e.History, 4)
	wantStates := []string{
		"WWWWWWWWW/WWW1WWWWW/BWBWWBWBW/BBBBB1BBB/BBBBBB1BB W E3 NE D2,E3 0",
		"WWWWWWWWW/WWW1WWWWW/BWBWWBWBW/BBBBB1BBB/BBBBBB1BB B - - - 1",
		"WWWW1WWWW/WWWBWWWWW/BW1WWBWBW/BBBBB1BBB/BBBBBB1BB B D2 SE D2,C3 1",
		"WWWW1WWWW/WWWBWWWWW/BW1WWBWBW/BBBBB1BBB/BBBBBB1BB W - - - 2",
	}
	for i, want := range wantStates {
		require.Equal(t, want, e.History[i].State, "push %d", i+1)
	}
	require.Equal(t, wantStates[3], e.State.String())
}

func TestNewScriptedPlayerRejectsBadNotation(t *testing.T) {
	_, err := NewScriptedPlayer("white", []string{"D2910", "nonsense"})
	require.ErrorContains(t, err, "script move 2")
}

func TestScriptedPlayerRejectsIllegalMove(t *testing.T) {
	// A1 east is a paika, illegal while the opening captures exist.
	white, err := NewScriptedPlayer("white", []string{"A1600"})
	require.NoError(t, err)
	black, err := NewScriptedPlayer("black", nil)
	require.NoError(t, err)

	_, _, err = LocalEngine(white, black).Run()
	require.ErrorContains(t, err, "not legal")
}

type stubbornPlayer struct{ move game.Move }

func (p stubbornPlayer) Name() string { return "stubborn" }

func (p stubbornPlayer) ChooseMove(_ *game.GameState, _ []game.Move) (game.Move, error) {
	return p.move, nil
}

func TestEngineRejectsMoveOutsideLegalList(t *testing.T) {
	white := stubbornPlayer{move: game.Move{From: game.Position{Row: 0, Col: 0}, Direction: game.E, Type: game.Paika}}
	black, err := NewScriptedPlayer("black", nil)
	require.NoError(t, err)

	_, _, err = LocalEngine(white, black).Run()
	require.ErrorContains(t, err, "illegal move")
}

func TestSampledSelfPlayTerminates(t *testing.T) {
	for seed := uint64(1); seed <= 3; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			white := NewSampledPlayer("white", seed)
			black := NewSampledPlayer("black", seed+100)

			e := LocalEngine(white, black, WithMaxMoves(2000))
			winner, metric, err := e.Run()
			require.NoError(t, err)

			require.True(t, e.State.Done(), "the run should stop on a terminal state")
			stateWinner, err := e.State.Winner()
			require.NoError(t, err)
			require.Equal(t, stateWinner, winner)

			require.Equal(t, len(e.History), metric.Moves)
			require.LessOrEqual(t, metric.Captures, metric.Moves)

			for i, update := range e.History {
				parsed, err := game.ParseState(update.State)
				require.NoError(t, err, "push %d left an unparseable state", i+1)
				require.Equal(t, update.State, parsed.String(), "push %d state is not canonical", i+1)
				require.Equal(t, update.Hash, parsed.Hash(), "push %d hash mismatch", i+1)
			}
		})
	}
}

func TestWithStateStartsMidGame(t *testing.T) {
	start, err := game.ParseState("9/9/BW7/9/9 W - - - 0")
	require.NoError(t, err)

	white, err := NewScriptedPlayer("white", []string{"B3620"})
	require.NoError(t, err)
	black, err := NewScriptedPlayer("black", nil)
	require.NoError(t, err)

	e := LocalEngine(white, black, WithState(start))
	winner, metric, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, game.White, winner, "capturing the last black piece wins outright")
	require.Equal(t, 1, metric.Moves)
	require.Equal(t, 1, metric.Captures)
}
