// Package games scores the interactive cognitive mini-games and generates
// their task content from a seedable source.
package games

import (
	"math"
	"time"

	"github.com/abhisek/cogscreen/internal/domain"
)

// GameType identifies a mini-game.
type GameType string

const (
	TypeMemory     GameType = "memory"
	TypeAttention  GameType = "attention"
	TypeProcessing GameType = "processing"
)

// AllTypes returns every game type in play order.
func AllTypes() []GameType {
	return []GameType{TypeMemory, TypeAttention, TypeProcessing}
}

// Domain returns the cognitive domain the game measures.
func (t GameType) Domain() (domain.Domain, bool) {
	switch t {
	case TypeMemory:
		return domain.Memory, true
	case TypeAttention:
		return domain.Attention, true
	case TypeProcessing:
		return domain.Executive, true
	default:
		return "", false
	}
}

// DisplayName returns a human-readable label for the game.
func (t GameType) DisplayName() string {
	switch t {
	case TypeMemory:
		return "Word Recall"
	case TypeAttention:
		return "Letter Vigilance"
	case TypeProcessing:
		return "Processing Speed"
	default:
		return string(t)
	}
}

// Result is the scored outcome of one completed game. It is built once
// when the game ends and never modified.
type Result struct {
	Type           GameType           `json:"gameType"`
	Score          float64            `json:"score"`          // 0..100
	Accuracy       float64            `json:"accuracy"`       // 0..100
	ReactionTimeMs float64            `json:"reactionTimeMs"` // mean over scored responses
	Domain         domain.Domain      `json:"domain"`
	Timestamp      time.Time          `json:"timestamp"`
	Metrics        map[string]float64 `json:"metrics,omitempty"`
}

func newResult(t GameType, at time.Time) Result {
	d, _ := t.Domain()
	return Result{
		Type:      t,
		Domain:    d,
		Timestamp: at,
		Metrics:   make(map[string]float64),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ratio divides guarding the denominator; a zero denominator yields 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}

func roundScore(v float64) float64 {
	return clamp(math.Round(v), 0, 100)
}
