package metrics

import (
	"time"

	"fanorona/game"
)

// GameMetric summarizes one finished game.
type GameMetric struct {
	Winner    game.Piece // Empty for a draw or an aborted game
	Moves     int        // individual pushes, end-turn actions included
	Captures  int        // pushes that captured at least one piece
	StartTime time.Time
	Duration  time.Duration
}

// Collector accumulates counts while a single game runs.
type Collector struct {
	startTime time.Time
	captures  int
}

func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

func (c *Collector) AddCapture() {
	c.captures++
}

// Complete closes the collection and returns the finished metric.
func (c *Collector) Complete(winner game.Piece, moves int) GameMetric {
	return GameMetric{
		Winner:    winner,
		Moves:     moves,
		Captures:  c.captures,
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
	}
}
