package games

import (
	"testing"

	"github.com/abhisek/cogscreen/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScoreAttention_Counts(t *testing.T) {
	res := ScoreAttention(AttentionSession{Counts: &AttentionCounts{
		Hits: 20, Misses: 5, FalseAlarms: 5, AvgReactionTimeMs: 400,
	}})

	assert.Equal(t, 80.0, res.Score)
	assert.InDelta(t, 80.0, res.Accuracy, 1e-9)
	assert.InDelta(t, 80.0, res.Metrics["sensitivity"], 1e-9)
	assert.Equal(t, 80.0, res.Metrics["speed_score"])
	assert.Equal(t, 400.0, res.ReactionTimeMs)
	assert.Equal(t, domain.Attention, res.Domain)
}

func TestScoreAttention_ZeroDenominators(t *testing.T) {
	// No hits and nothing else: both ratios are 0, only speed contributes.
	res := ScoreAttention(AttentionSession{Counts: &AttentionCounts{}})
	assert.Equal(t, 20.0, res.Score)
	assert.Equal(t, 0.0, res.Accuracy)
}

func TestScoreAttention_SlowReactionsClamp(t *testing.T) {
	res := ScoreAttention(AttentionSession{Counts: &AttentionCounts{
		Hits: 10, AvgReactionTimeMs: 5000,
	}})
	assert.Equal(t, 0.0, res.Metrics["speed_score"])
	assert.Equal(t, 80.0, res.Score)
}

func TestCountStimuli(t *testing.T) {
	stimuli := []Stimulus{
		{Letter: "X", IsTarget: true, Responded: true, ReactionTimeMs: 300},
		{Letter: "X", IsTarget: true, Responded: true, ReactionTimeMs: 500},
		{Letter: "X", IsTarget: true},
		{Letter: "A", Responded: true, ReactionTimeMs: 200},
		{Letter: "B"},
	}

	c := CountStimuli(stimuli)
	assert.Equal(t, 2, c.Hits)
	assert.Equal(t, 1, c.Misses)
	assert.Equal(t, 1, c.FalseAlarms)
	assert.Equal(t, 400.0, c.AvgReactionTimeMs)
}

func TestScoreAttention_StimuliMatchCounts(t *testing.T) {
	stimuli := []Stimulus{
		{IsTarget: true, Responded: true, ReactionTimeMs: 400},
		{IsTarget: true, Responded: true, ReactionTimeMs: 400},
		{IsTarget: true},
		{Responded: true},
	}
	fromStream := ScoreAttention(AttentionSession{Stimuli: stimuli})
	c := CountStimuli(stimuli)
	fromCounts := ScoreAttention(AttentionSession{Counts: &c})
	assert.Equal(t, fromCounts.Score, fromStream.Score)
}

func TestAttentionSpeedScore(t *testing.T) {
	tests := []struct {
		rt   float64
		want float64
	}{
		{0, 100},
		{400, 80},
		{1000, 50},
		{2000, 0},
		{3000, 0},
	}
	for _, tt := range tests {
		if got := AttentionSpeedScore(tt.rt); got != tt.want {
			t.Errorf("AttentionSpeedScore(%f) = %f, want %f", tt.rt, got, tt.want)
		}
	}
}
