package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/cogscreen/internal/assessment"
	"github.com/abhisek/cogscreen/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `{
  "personal": {"age": 67, "education": "bachelor"},
  "answers": [
    {"id": 1, "value": "never"}, {"id": 2, "value": "never"}, {"id": 3, "value": "sometimes"},
    {"id": 4, "value": "never"}, {"id": 5, "value": "never"}, {"id": 6, "value": "never"},
    {"id": 7, "value": "never"}, {"id": 8, "value": "never"}, {"id": 9, "value": "never"},
    {"id": 10, "value": "never"}, {"id": 11, "value": "never"}, {"id": 12, "value": "never"}
  ],
  "games": {
    "memory": [{"words": ["apple", "river", "candle", "garden", "window"], "recalled": ["apple", "river", "candle", "garden"]}],
    "attention": [{"counts": {"hits": 20, "misses": 5, "falseAlarms": 5, "avgReactionTimeMs": 400}}]
  }
}`

// run executes the root command with args and returns its stdout.
func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestTasksDeterministic(t *testing.T) {
	t.Chdir(t.TempDir())
	args := []string{"tasks", "--seed", "42", "--words", "5", "--stimuli", "20",
		"--target", "X", "--ratio", "0.25", "--trials", "8", "--json"}

	first := run(t, "", args...)
	second := run(t, "", args...)
	assert.Equal(t, first, second)

	var set taskSet
	require.NoError(t, json.Unmarshal([]byte(first), &set))
	assert.Equal(t, uint64(42), set.Seed)
	assert.Len(t, set.Words, 5)
	assert.Len(t, set.Stimuli, 20)
	assert.Len(t, set.Processing, 8)
	assert.Equal(t, "X", set.TargetLetter)
}

func TestAssessAndProfile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	db := filepath.Join(dir, "test.db")

	out := run(t, document, "assess", "-i", "-", "--json", "--save=false", "--user", "")
	var report assessment.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.GamesCompleted)
	assert.Equal(t, 1, report.SymptomTotal)
	assert.GreaterOrEqual(t, report.Profile.OverallScore, 0)
	assert.LessOrEqual(t, report.Profile.OverallScore, 100)

	run(t, document, "assess", "-i", "-", "--json", "--save", "--user", "u1", "--db", db)

	out = run(t, "", "profile", "show", "u1", "--json", "--db", db)
	var prof store.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &prof))
	assert.Equal(t, report.Profile.OverallScore, prof.OverallScore)
	assert.Equal(t, report.Profile.RiskLevel, prof.RiskLevel)
	assert.NotEmpty(t, prof.SessionID)

	out = run(t, "", "profile", "history", "u1", "--limit", "5", "--db", db)
	assert.Contains(t, out, prof.SessionID)
}
