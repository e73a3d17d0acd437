package game

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRunLogPathXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	path, err := defaultRunLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "pascman", "runs.jsonl"), path)
}

func TestDefaultRunLogPathFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	path, err := defaultRunLogPath()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	assert.True(t, strings.HasSuffix(path, filepath.Join(".local", "share", "pascman", "runs.jsonl")))
}

func TestSaveRunLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "runs.jsonl")
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, saveRunLog(path, RunLog{RunID: "a", Outcome: "won", Ticks: 10, Started: start, Ended: start}))
	require.NoError(t, saveRunLog(path, RunLog{RunID: "b", Outcome: "lost", FoodEaten: 3}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var recs []RunLog
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var r RunLog
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		recs = append(recs, r)
	}
	require.Len(t, recs, 2)
	assert.Equal(t, "won", recs[0].Outcome)
	assert.Equal(t, uint64(10), recs[0].Ticks)
	assert.Equal(t, 3, recs[1].FoodEaten)
}
