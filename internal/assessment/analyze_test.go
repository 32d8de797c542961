package assessment

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/cogscreen/internal/domain"
	"github.com/abhisek/cogscreen/internal/games"
	"github.com/abhisek/cogscreen/internal/questionnaire"
	"github.com/abhisek/cogscreen/internal/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() Input {
	bank := questionnaire.DefaultBank()
	answers := questionnaire.NewAnswerMap()
	for _, it := range bank.Base {
		answers.Set(it.ID, "sometimes")
	}
	return Input{
		Personal: PersonalInfo{Age: 72, Education: EducationMaster, HealthConditions: []string{"Cardiovascular disease"}},
		Answers:  answers,
		Items:    bank.Base,
		Results: []games.Result{
			games.ScoreMemory(games.MemorySession{
				Words:    []string{"apple", "river", "candle", "garden", "window"},
				Recalled: []string{"apple", "river"},
			}),
			games.ScoreAttention(games.AttentionSession{Counts: &games.AttentionCounts{
				Hits: 20, Misses: 5, FalseAlarms: 5, AvgReactionTimeMs: 400,
			}}),
		},
		Previous: map[domain.Domain]float64{domain.Visuospatial: 90},
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	in := sampleInput()
	first := Analyze(in, DefaultPolicy())
	second := Analyze(in, DefaultPolicy())
	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestAnalyze_Report(t *testing.T) {
	r := Analyze(sampleInput(), DefaultPolicy())

	// 12 items at "sometimes": 12 of 36.
	assert.Equal(t, 12, r.SymptomTotal)
	assert.InDelta(t, 66.67, r.QuestionnairePercent, 0.01)
	// Memory 40, attention 80.
	assert.Equal(t, 60.0, r.GameAverage)
	// round(42 + 20) = 62, plus 10 for age 72.
	assert.Equal(t, 62, r.BaseScore)
	assert.Equal(t, 72, r.Profile.OverallScore)
	assert.Equal(t, risk.LevelModerate, r.Profile.RiskLevel)

	assert.Contains(t, r.Profile.Concerns, risk.ConcernKey(domain.Memory))
	assert.Contains(t, r.Profile.Concerns, risk.KeyConcernCardio)
	assert.NotContains(t, r.Profile.Concerns, risk.KeyConcernSymptoms)

	// Visuospatial is measured by the questionnaire, so the previous value
	// is not used.
	assert.InDelta(t, 66.67, r.Profile.DomainScores[domain.Visuospatial], 0.01)
	assert.Len(t, r.Profile.Recommendations, risk.MaxRecommendations)

	require.NotEmpty(t, r.Categories)
	assert.Equal(t, questionnaire.CategoryMemory, r.Categories[0].Category)
	assert.Equal(t, 3, r.Categories[0].Answered)
	assert.Len(t, r.Results, 2)
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	in := sampleInput()
	before := in.Answers.Answers()
	r := Analyze(in, DefaultPolicy())
	r.Results[0].Score = -1

	assert.Equal(t, before, in.Answers.Answers())
	assert.NotEqual(t, -1.0, in.Results[0].Score)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	r := Analyze(Input{Personal: PersonalInfo{Age: 40, Education: EducationNone}}, DefaultPolicy())
	assert.Equal(t, 0, r.SymptomTotal)
	assert.Equal(t, 100.0, r.QuestionnairePercent)
	assert.Equal(t, 100, r.Profile.OverallScore)
	for _, d := range domain.All() {
		assert.Equal(t, 70.0, r.Profile.DomainScores[d])
	}
	assert.NotEmpty(t, r.Profile.Strengths)
}
