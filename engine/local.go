package engine

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"fanorona/experiments/metrics"
	"fanorona/game"
)

// Engine runs a local game between two Players, arbitrating every move
// through the rules core.
type Engine struct {
	State    *game.GameState
	History  []Update
	players  map[game.Piece]Player
	maxMoves int
}

type Option func(e *Engine)

// WithMaxMoves overrides the push cap.
func WithMaxMoves(maxMoves int) Option {
	return func(e *Engine) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

// WithState starts the game from an arbitrary position instead of the
// opening.
func WithState(state *game.GameState) Option {
	return func(e *Engine) {
		if state != nil {
			e.State = state
		}
	}
}

// LocalEngine sets up a game at the opening position between a white and a
// black player.
func LocalEngine(white, black Player, options ...Option) *Engine {
	e := &Engine{
		State: game.NewGameState(),
		players: map[game.Piece]Player{
			game.White: white,
			game.Black: black,
		},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the game to its end and returns the winner (Empty for a draw)
// together with the collected game metric. A player returning an error, or
// choosing a move outside the legal list, aborts the run.
func (e *Engine) Run() (game.Piece, metrics.GameMetric, error) {
	collector := metrics.NewCollector()

	log.Info().Msgf("%s starts from %q", e.players[e.State.TurnToPlay].Name(), e.State)

	for !e.State.Done() {
		if len(e.History) >= e.maxMoves {
			return game.Empty, collector.Complete(game.Empty, len(e.History)),
				fmt.Errorf("no result after %d moves", e.maxMoves)
		}

		player := e.players[e.State.TurnToPlay]
		legal := e.State.LegalMoves()
		if len(legal) == 0 {
			return game.Empty, collector.Complete(game.Empty, len(e.History)),
				fmt.Errorf("no legal moves for %s in %q", player.Name(), e.State)
		}

		move, err := player.ChooseMove(e.State.Copy(), legal)
		if err != nil {
			return game.Empty, collector.Complete(game.Empty, len(e.History)),
				fmt.Errorf("%s: %w", player.Name(), err)
		}
		move = move.Canonical()
		if !slices.Contains(legal, move) {
			return game.Empty, collector.Complete(game.Empty, len(e.History)),
				fmt.Errorf("%s chose illegal move %s in %q", player.Name(), move, e.State)
		}

		if err := e.State.Push(move); err != nil {
			return game.Empty, collector.Complete(game.Empty, len(e.History)), err
		}
		if !move.EndTurn && move.Type != game.Paika {
			collector.AddCapture()
		}
		e.History = append(e.History, Update{Move: move, State: e.State.String(), Hash: e.State.Hash()})

		log.Debug().Msgf("%s plays %s -> %q", player.Name(), move, e.State)
	}

	winner, err := e.State.Winner()
	if err != nil {
		return game.Empty, collector.Complete(game.Empty, len(e.History)), err
	}

	if winner == game.Empty {
		log.Info().Msgf("game drawn after %d moves", len(e.History))
	} else {
		log.Info().Msgf("%s wins after %d moves", e.players[winner].Name(), len(e.History))
	}

	return winner, collector.Complete(winner, len(e.History)), nil
}
