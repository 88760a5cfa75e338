package engine

import (
	"fmt"
	"slices"

	"golang.org/x/exp/rand"

	"fanorona/game"
)

// ScriptedPlayer replays a fixed list of short-notation moves. Tests and the
// replay command use it to drive known games.
type ScriptedPlayer struct {
	name  string
	moves []game.Move
	next  int
}

// NewScriptedPlayer parses the notation list up front, so a broken script
// fails before any game starts.
func NewScriptedPlayer(name string, notation []string) (*ScriptedPlayer, error) {
	moves := make([]game.Move, len(notation))
	for i, s := range notation {
		m, err := game.ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("script move %d: %w", i+1, err)
		}
		moves[i] = m
	}
	return &ScriptedPlayer{name: name, moves: moves}, nil
}

func (p *ScriptedPlayer) Name() string { return p.name }

func (p *ScriptedPlayer) ChooseMove(_ *game.GameState, legal []game.Move) (game.Move, error) {
	if p.next >= len(p.moves) {
		return game.Move{}, fmt.Errorf("script exhausted after %d moves", len(p.moves))
	}
	m := p.moves[p.next].Canonical()
	p.next++
	if !slices.Contains(legal, m) {
		return game.Move{}, fmt.Errorf("scripted move %s is not legal", m)
	}
	return m, nil
}

// SampledPlayer picks uniformly from the legal list. It exists to exercise
// the rules core in volume, not to play well.
type SampledPlayer struct {
	name string
	rng  *rand.Rand
}

func NewSampledPlayer(name string, seed uint64) *SampledPlayer {
	return &SampledPlayer{name: name, rng: rand.New(rand.NewSource(seed))}
}

func (p *SampledPlayer) Name() string { return p.name }

func (p *SampledPlayer) ChooseMove(_ *game.GameState, legal []game.Move) (game.Move, error) {
	return legal[p.rng.Intn(len(legal))], nil
}
