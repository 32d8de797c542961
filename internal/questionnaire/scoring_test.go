package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInversePercent(t *testing.T) {
	tests := []struct {
		sum, max int
		want     float64
	}{
		{0, 9, 100},
		{9, 9, 0},
		{3, 12, 75},
		{0, 0, 100},
		{20, 10, 0},
		{-5, 10, 100},
	}
	for _, tt := range tests {
		got := InversePercent(tt.sum, tt.max)
		if got != tt.want {
			t.Errorf("InversePercent(%d, %d) = %f, want %f", tt.sum, tt.max, got, tt.want)
		}
	}
}

func TestCategoryScores(t *testing.T) {
	items := DefaultBank().Base
	answers := NewAnswerMap(
		Answer{ItemID: 1, Value: "always"},
		Answer{ItemID: 2, Value: "sometimes"},
		Answer{ItemID: 4, Value: "often"},
	)

	scores := CategoryScores(items, answers)

	mem := scores[CategoryMemory]
	assert.Equal(t, 4, mem.Sum)
	assert.Equal(t, 9, mem.Max)
	assert.Equal(t, 2, mem.Answered)
	assert.InDelta(t, 55.555, mem.Percent(), 0.01)

	lang := scores[CategoryLanguage]
	assert.Equal(t, 2, lang.Sum)
	assert.InDelta(t, 33.333, lang.Percent(), 0.01)

	social := scores[CategorySocial]
	assert.Equal(t, 0, social.Answered)
	assert.Equal(t, 100.0, social.Percent())
}

func TestCategoryScores_UnknownCategorySkipped(t *testing.T) {
	items := []Item{
		{ID: 1, Category: "bogus", Options: []Option{{Value: "a", Score: 3}}},
		{ID: 2, Category: CategoryMemory, Options: []Option{{Value: "a", Score: 3}}},
	}
	answers := NewAnswerMap(Answer{ItemID: 1, Value: "a"}, Answer{ItemID: 2, Value: "a"})

	scores := CategoryScores(items, answers)
	assert.Len(t, scores, 1)
	assert.Equal(t, 3, scores[CategoryMemory].Sum)
}

func TestSeverityPercent_Bounds(t *testing.T) {
	items := DefaultBank().Base
	none := NewAnswerMap()
	assert.Equal(t, 100.0, SeverityPercent(items, none))

	all := NewAnswerMap()
	for _, it := range items {
		all.Set(it.ID, "always")
	}
	assert.Equal(t, 0.0, SeverityPercent(items, all))
	assert.Equal(t, 36, MaxTotal(items))
}

func TestTotalScore_UnknownValueIsZero(t *testing.T) {
	answers := NewAnswerMap(Answer{ItemID: 1, Value: "sometimes"}, Answer{ItemID: 2, Value: "frequently"})
	assert.Equal(t, 1, TotalScore(DefaultBank().Base, answers))
}

func TestItemSeverity(t *testing.T) {
	it, ok := DefaultBank().Item(1)
	if !ok {
		t.Fatal("item 1 missing from default bank")
	}
	cases := []struct {
		value      string
		concerning bool
		sometimes  bool
	}{
		{"never", false, false},
		{"sometimes", false, true},
		{"often", true, true},
		{"always", true, true},
		{"unknown", false, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.concerning, it.IsConcerning(c.value), "IsConcerning(%q)", c.value)
		assert.Equal(t, c.sometimes, it.IsSometimesOrWorse(c.value), "IsSometimesOrWorse(%q)", c.value)
	}
}
