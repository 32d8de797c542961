package questionnaire

// Option is one selectable answer. Score measures symptom severity (0..3).
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
	Score int    `yaml:"score" json:"score"`
}

// Item is a single questionnaire question. Items are immutable once the
// bank is loaded.
type Item struct {
	ID       int      `yaml:"id" json:"id"`
	Category Category `yaml:"category" json:"category"`
	Text     string   `yaml:"text" json:"text"`
	Options  []Option `yaml:"options" json:"options"`
	Adaptive bool     `yaml:"adaptive" json:"adaptive"`
}

// Option returns the option with the given value.
func (it *Item) Option(value string) (Option, bool) {
	for _, o := range it.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// OptionScore returns the score of the selected value, or 0 when the value
// is not one of the item's options.
func (it *Item) OptionScore(value string) int {
	o, ok := it.Option(value)
	if !ok {
		return 0
	}
	return o.Score
}

// MaxScore returns the highest score any option of the item carries.
func (it *Item) MaxScore() int {
	best := 0
	for _, o := range it.Options {
		if o.Score > best {
			best = o.Score
		}
	}
	return best
}

// severityRank counts the options that are strictly less severe than value.
// The lowest-severity option has rank 0.
func (it *Item) severityRank(value string) (int, bool) {
	sel, ok := it.Option(value)
	if !ok {
		return 0, false
	}
	rank := 0
	for _, o := range it.Options {
		if o.Score < sel.Score {
			rank++
		}
	}
	return rank, true
}

// IsConcerning reports whether value is one of the two highest-severity
// options of the item.
func (it *Item) IsConcerning(value string) bool {
	rank, ok := it.severityRank(value)
	if !ok || len(it.Options) < 2 {
		return false
	}
	return rank >= len(it.Options)-2
}

// IsSometimesOrWorse reports whether value is at the second-lowest severity
// or above.
func (it *Item) IsSometimesOrWorse(value string) bool {
	rank, ok := it.severityRank(value)
	return ok && rank >= 1
}
