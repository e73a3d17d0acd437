package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// RunLog records statistics gathered during one round.
type RunLog struct {
	RunID     string    `json:"run_id"`
	Outcome   string    `json:"outcome"`
	Ticks     uint64    `json:"ticks"`
	FoodEaten int       `json:"food_eaten"`
	Kills     int       `json:"kills"`
	Started   time.Time `json:"started"`
	Ended     time.Time `json:"ended"`
}

// logRound appends the current round to the run log once.
func (s *Simulation) logRound(outcome string) {
	if s.runlog == "" || s.round.logged {
		return
	}
	s.round.logged = true
	rec := RunLog{
		RunID:     s.round.id.String(),
		Outcome:   outcome,
		Ticks:     s.round.ticks,
		FoodEaten: s.env.Round.FoodEaten,
		Kills:     s.env.Round.Kills,
		Started:   s.round.started,
		Ended:     s.env.Now,
	}
	if err := saveRunLog(s.runlog, rec); err != nil {
		s.log.Warn("run log not written", zap.String("path", s.runlog), zap.Error(err))
	}
}

// saveRunLog appends rec as a single JSON line to path.
func saveRunLog(path string, rec RunLog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// defaultRunLogPath follows the XDG base directory layout:
// $XDG_DATA_HOME/pascman/runs.jsonl, defaulting to ~/.local/share.
func defaultRunLogPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pascman", "runs.jsonl"), nil
}
