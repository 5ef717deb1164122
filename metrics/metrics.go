// Package metrics records self-play game outcomes and writes them as CSV
// for offline analysis.
package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// GameRecord is one finished (or aborted) game.
type GameRecord struct {
	Game      uuid.UUID
	Seed      uint64
	Players   int
	Winner    int // -1 if the step ceiling was hit
	Turns     int
	Steps     int
	StartTime time.Time
	Duration  time.Duration
}

// Collector accumulates records for one run.
type Collector struct {
	records []GameRecord
	started time.Time
}

// StartGame marks the beginning of a game and returns a completion
// callback that files the record.
func (c *Collector) StartGame(game uuid.UUID, seed uint64, players int) func(winner, turns, steps int) {
	start := time.Now()
	return func(winner, turns, steps int) {
		c.records = append(c.records, GameRecord{
			Game:      game,
			Seed:      seed,
			Players:   players,
			Winner:    winner,
			Turns:     turns,
			Steps:     steps,
			StartTime: start,
			Duration:  time.Since(start),
		})
	}
}

// Records returns everything collected so far.
func (c *Collector) Records() []GameRecord {
	return c.records
}

// Writer writes run output under a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory this writer targets.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteGameRecords writes one CSV row per game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "seed", "players", "winner", "turns", "steps", "start_time", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Game.String(),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Players),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Steps),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return writer.Error()
}
