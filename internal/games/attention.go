package games

import "time"

// Stimulus is one letter shown during the vigilance game and the player's
// reaction to it.
type Stimulus struct {
	Letter         string  `json:"letter"`
	IsTarget       bool    `json:"isTarget"`
	Responded      bool    `json:"responded"`
	ReactionTimeMs float64 `json:"reactionTimeMs,omitempty"`
}

// AttentionCounts are the signal-detection tallies of a vigilance game.
type AttentionCounts struct {
	Hits              int     `json:"hits"`
	Misses            int     `json:"misses"`
	FalseAlarms       int     `json:"falseAlarms"`
	AvgReactionTimeMs float64 `json:"avgReactionTimeMs"`
}

// AttentionSession is the raw telemetry of a go/no-go vigilance game.
// Counts take precedence over Stimuli when both are present.
type AttentionSession struct {
	TargetLetter string           `json:"targetLetter,omitempty"`
	Stimuli      []Stimulus       `json:"stimuli,omitempty"`
	Counts       *AttentionCounts `json:"counts,omitempty"`
	CompletedAt  time.Time        `json:"completedAt"`
}

// CountStimuli tallies hits, misses and false alarms. The mean reaction
// time is taken over hits only; it is 0 when there are none.
func CountStimuli(stimuli []Stimulus) AttentionCounts {
	var c AttentionCounts
	var hitTimes []float64
	for _, st := range stimuli {
		switch {
		case st.IsTarget && st.Responded:
			c.Hits++
			hitTimes = append(hitTimes, st.ReactionTimeMs)
		case st.IsTarget:
			c.Misses++
		case st.Responded:
			c.FalseAlarms++
		}
	}
	c.AvgReactionTimeMs, _ = mean(hitTimes)
	return c
}

// AttentionRatios returns accuracy = hits/(hits+falseAlarms) and
// sensitivity = hits/(hits+misses), each in [0, 1].
func AttentionRatios(c AttentionCounts) (accuracy, sensitivity float64) {
	hits := float64(max(c.Hits, 0))
	accuracy = ratio(hits, hits+float64(max(c.FalseAlarms, 0)))
	sensitivity = ratio(hits, hits+float64(max(c.Misses, 0)))
	return accuracy, sensitivity
}

// AttentionSpeedScore converts a mean reaction time to 0..100, losing one
// point per 20ms.
func AttentionSpeedScore(avgReactionTimeMs float64) float64 {
	return clamp(100-avgReactionTimeMs/20, 0, 100)
}

// ScoreAttention scores a vigilance game:
// round(accuracy*40 + sensitivity*40 + speed*0.2), clamped to [0, 100].
func ScoreAttention(s AttentionSession) Result {
	res := newResult(TypeAttention, s.CompletedAt)

	var c AttentionCounts
	if s.Counts != nil {
		c = *s.Counts
	} else {
		c = CountStimuli(s.Stimuli)
	}

	accuracy, sensitivity := AttentionRatios(c)
	speed := AttentionSpeedScore(c.AvgReactionTimeMs)

	res.Score = roundScore(accuracy*100*0.4 + sensitivity*100*0.4 + speed*0.2)
	res.Accuracy = accuracy * 100
	res.ReactionTimeMs = c.AvgReactionTimeMs
	res.Metrics["sensitivity"] = sensitivity * 100
	res.Metrics["speed_score"] = speed
	res.Metrics["hits"] = float64(c.Hits)
	res.Metrics["misses"] = float64(c.Misses)
	res.Metrics["false_alarms"] = float64(c.FalseAlarms)
	return res
}
