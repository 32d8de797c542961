package games

import "time"

// TaskType is the kind of processing-speed trial.
type TaskType string

const (
	TaskMath       TaskType = "math"
	TaskStroop     TaskType = "stroop"
	TaskSpatial    TaskType = "spatial"
	TaskMatch      TaskType = "match"
	TaskComparison TaskType = "comparison"
)

// AllTaskTypes returns every processing task type.
func AllTaskTypes() []TaskType {
	return []TaskType{TaskMath, TaskStroop, TaskSpatial, TaskMatch, TaskComparison}
}

// Bonus returns the per-type points added to a correct trial.
func (t TaskType) Bonus() float64 {
	switch t {
	case TaskMath:
		return 10
	case TaskStroop:
		return 20
	case TaskSpatial:
		return 15
	case TaskMatch:
		return 5
	case TaskComparison:
		return 8
	default:
		return 0
	}
}

const (
	// DefaultTargetTrials is the trial count a full processing session aims for.
	DefaultTargetTrials = 20

	// MinComplexity and MaxComplexity bound a trial's complexity level.
	MinComplexity = 1
	MaxComplexity = 3

	trialBase     = 50.0
	switchPenalty = 10.0
	neutralScore  = 50.0
)

// Component weights of the session score.
const (
	weightSpeed         = 0.25
	weightAccuracy      = 0.20
	weightSwitching     = 0.20
	weightConsistency   = 0.15
	weightWorkingMemory = 0.10
	weightCompletion    = 0.10
)

// ProcessingTrial is one answered processing-speed task.
type ProcessingTrial struct {
	TaskType       TaskType `json:"taskType"`
	Complexity     int      `json:"complexity"`
	ReactionTimeMs float64  `json:"reactionTimeMs"`
	Correct        bool     `json:"correct"`
	Switch         bool     `json:"switch"`
}

// ProcessingSession is the raw telemetry of a processing-speed game.
type ProcessingSession struct {
	Trials       []ProcessingTrial `json:"trials"`
	TargetTrials int               `json:"targetTrials,omitempty"`
	CompletedAt  time.Time         `json:"completedAt"`
}

// ProcessingBreakdown holds the session-level components, each 0..100,
// plus the raw per-trial point total.
type ProcessingBreakdown struct {
	Speed                float64 `json:"speed"`
	Accuracy             float64 `json:"accuracy"`
	Switching            float64 `json:"switching"`
	Consistency          float64 `json:"consistency"`
	WorkingMemory        float64 `json:"workingMemory"`
	Completion           float64 `json:"completion"`
	RawPoints            float64 `json:"rawPoints"`
	AvgReactionTimeMs    float64 `json:"avgReactionTimeMs"`
	SwitchReactionTimeMs float64 `json:"switchReactionTimeMs"`
}

// Weighted returns the combined session score before rounding.
func (b ProcessingBreakdown) Weighted() float64 {
	return weightSpeed*b.Speed +
		weightAccuracy*b.Accuracy +
		weightSwitching*b.Switching +
		weightConsistency*b.Consistency +
		weightWorkingMemory*b.WorkingMemory +
		weightCompletion*b.Completion
}

func clampComplexity(c int) int {
	if c < MinComplexity {
		return MinComplexity
	}
	if c > MaxComplexity {
		return MaxComplexity
	}
	return c
}

// OptimalTimeMs is the reaction time at which a trial of the given
// complexity stops earning the full time bonus.
func OptimalTimeMs(complexity int) float64 {
	return 800 + float64(clampComplexity(complexity))*400
}

// TimeBonus returns 0..100 points, losing one point per 20ms beyond the
// optimal time.
func TimeBonus(reactionTimeMs float64, complexity int) float64 {
	over := max(0, (reactionTimeMs-OptimalTimeMs(complexity))/20)
	return max(0, 100-over)
}

// TrialPoints returns the points a trial earns. Incorrect trials earn 0.
func TrialPoints(t ProcessingTrial) float64 {
	if !t.Correct {
		return 0
	}
	c := clampComplexity(t.Complexity)
	pts := trialBase + float64(c)*20 + TimeBonus(t.ReactionTimeMs, c) + t.TaskType.Bonus()
	if t.Switch {
		pts -= switchPenalty
	}
	return pts
}

// ProcessingComponents computes the session components. Components whose
// denominator is empty fall back to a neutral 50, and a missing switch
// reaction time falls back to the overall mean.
func ProcessingComponents(s ProcessingSession) ProcessingBreakdown {
	var b ProcessingBreakdown
	n := len(s.Trials)
	if n == 0 {
		return b
	}

	var all, switched, bonuses []float64
	correct := 0
	var weightCorrect, weightAll float64
	for _, t := range s.Trials {
		c := clampComplexity(t.Complexity)
		all = append(all, t.ReactionTimeMs)
		if t.Switch {
			switched = append(switched, t.ReactionTimeMs)
		}
		weightAll += float64(c)
		if t.Correct {
			correct++
			weightCorrect += float64(c)
			bonuses = append(bonuses, TimeBonus(t.ReactionTimeMs, c))
		}
		b.RawPoints += TrialPoints(t)
	}

	b.AvgReactionTimeMs, _ = mean(all)
	if avg, ok := mean(switched); ok {
		b.SwitchReactionTimeMs = avg
	} else {
		b.SwitchReactionTimeMs = b.AvgReactionTimeMs
	}

	if avg, ok := mean(bonuses); ok {
		b.Speed = avg
	} else {
		b.Speed = neutralScore
	}

	b.Accuracy = ratio(float64(correct), float64(n)) * 100

	cost := max(0, b.SwitchReactionTimeMs-b.AvgReactionTimeMs)
	b.Switching = clamp(100-cost/10, 0, 100)

	b.Consistency = consistency(s.Trials)

	b.WorkingMemory = ratio(weightCorrect, weightAll) * 100

	target := s.TargetTrials
	if target <= 0 {
		target = DefaultTargetTrials
	}
	b.Completion = clamp(float64(n)/float64(target)*100, 0, 100)

	return b
}

// consistency compares accuracy in the first and second half of the
// session; only a decline costs points.
func consistency(trials []ProcessingTrial) float64 {
	if len(trials) < 2 {
		return neutralScore
	}
	half := len(trials) / 2
	early := accuracyOf(trials[:half])
	late := accuracyOf(trials[half:])
	return clamp(100-max(0, early-late), 0, 100)
}

func accuracyOf(trials []ProcessingTrial) float64 {
	correct := 0
	for _, t := range trials {
		if t.Correct {
			correct++
		}
	}
	return ratio(float64(correct), float64(len(trials))) * 100
}

// ScoreProcessing scores a processing-speed session. A session with no
// trials scores 0.
func ScoreProcessing(s ProcessingSession) Result {
	res := newResult(TypeProcessing, s.CompletedAt)
	b := ProcessingComponents(s)
	if len(s.Trials) > 0 {
		res.Score = roundScore(b.Weighted())
	}
	res.Accuracy = b.Accuracy
	res.ReactionTimeMs = b.AvgReactionTimeMs

	res.Metrics["speed"] = b.Speed
	res.Metrics["switching"] = b.Switching
	res.Metrics["consistency"] = b.Consistency
	res.Metrics["working_memory"] = b.WorkingMemory
	res.Metrics["completion"] = b.Completion
	res.Metrics["raw_points"] = b.RawPoints
	res.Metrics["switch_reaction_time_ms"] = b.SwitchReactionTimeMs
	return res
}
