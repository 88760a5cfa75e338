package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"fanorona/game"
)

// GameRecord ties a metric to its game number and the seed it ran with.
type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped output directory for one batch of games.
func NewWriter() (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "selfplay", timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory the batch writes into.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "seed", "winner", "moves", "captures", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			winnerLabel(record.Winner),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.Captures),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func winnerLabel(winner game.Piece) string {
	if winner == game.Empty {
		return "draw"
	}
	return winner.String()
}
