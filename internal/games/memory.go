package games

import (
	"strings"
	"time"
)

// MemorySession is the raw telemetry of a word-recall game.
type MemorySession struct {
	Words       []string  `json:"words"`
	Recalled    []string  `json:"recalled"`
	CompletedAt time.Time `json:"completedAt"`
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// ScoreMemory scores word recall as the percentage of the original list
// that was recalled. Order does not matter and repeats count once.
func ScoreMemory(s MemorySession) Result {
	res := newResult(TypeMemory, s.CompletedAt)

	original := make(map[string]bool, len(s.Words))
	for _, w := range s.Words {
		if n := normalizeWord(w); n != "" {
			original[n] = true
		}
	}

	hit := make(map[string]bool)
	for _, w := range s.Recalled {
		n := normalizeWord(w)
		if original[n] {
			hit[n] = true
		}
	}

	accuracy := ratio(float64(len(hit)), float64(len(original))) * 100
	res.Accuracy = clamp(accuracy, 0, 100)
	res.Score = res.Accuracy
	res.Metrics["recalled"] = float64(len(hit))
	res.Metrics["list_size"] = float64(len(original))
	res.Metrics["intrusions"] = float64(countIntrusions(s.Recalled, original))
	return res
}

// countIntrusions counts distinct recalled words that were never shown.
func countIntrusions(recalled []string, original map[string]bool) int {
	seen := make(map[string]bool)
	for _, w := range recalled {
		n := normalizeWord(w)
		if n != "" && !original[n] {
			seen[n] = true
		}
	}
	return len(seen)
}
