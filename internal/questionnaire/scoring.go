package questionnaire

// CategoryScore aggregates the severity scores of one category.
type CategoryScore struct {
	Category Category `json:"category"`
	Sum      int      `json:"sum"`
	Max      int      `json:"max"`
	Answered int      `json:"answered"`
}

// Percent returns the inverse-severity percentage: 100 means no reported
// symptoms. A category with no possible score reads as 100.
func (s CategoryScore) Percent() float64 {
	return InversePercent(s.Sum, s.Max)
}

// InversePercent computes 100 - sum/max*100 clamped to [0, 100].
func InversePercent(sum, max int) float64 {
	if max <= 0 {
		return 100
	}
	p := 100 - float64(sum)/float64(max)*100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// TotalScore sums the selected option scores over items. Missing answers
// and unknown option values count as 0.
func TotalScore(items []Item, answers *AnswerMap) int {
	total := 0
	for i := range items {
		if v, ok := answers.Get(items[i].ID); ok {
			total += items[i].OptionScore(v)
		}
	}
	return total
}

// MaxTotal returns the highest total the given items can reach.
func MaxTotal(items []Item) int {
	total := 0
	for i := range items {
		total += items[i].MaxScore()
	}
	return total
}

// SeverityPercent is the inverse-severity percentage across all items.
func SeverityPercent(items []Item, answers *AnswerMap) float64 {
	return InversePercent(TotalScore(items, answers), MaxTotal(items))
}

// CategoryScores groups items by category. Each item contributes to
// exactly one category; items with an unknown category are skipped.
func CategoryScores(items []Item, answers *AnswerMap) map[Category]CategoryScore {
	out := make(map[Category]CategoryScore)
	for i := range items {
		it := &items[i]
		if !it.Category.Valid() {
			continue
		}
		cs := out[it.Category]
		cs.Category = it.Category
		cs.Max += it.MaxScore()
		if v, ok := answers.Get(it.ID); ok {
			cs.Sum += it.OptionScore(v)
			cs.Answered++
		}
		out[it.Category] = cs
	}
	return out
}
