package questionnaire

// DefaultAdaptiveThreshold is the base-set total (exclusive) above which
// adaptive items are considered.
const DefaultAdaptiveThreshold = 8

// Engine holds the active question sequence for one session. The sequence
// starts as the base set and only ever grows by appending adaptive items.
type Engine struct {
	bank      *Bank
	threshold int
	sequence  []Item
	evaluated bool
}

// NewEngine creates an engine over bank. A nil bank selects the default.
func NewEngine(bank *Bank, threshold int) *Engine {
	if bank == nil {
		bank = DefaultBank()
	}
	seq := make([]Item, len(bank.Base))
	copy(seq, bank.Base)
	return &Engine{
		bank:      bank,
		threshold: threshold,
		sequence:  seq,
	}
}

// Bank returns the item bank the engine draws from.
func (e *Engine) Bank() *Bank { return e.bank }

// Sequence returns a copy of the active question sequence.
func (e *Engine) Sequence() []Item {
	out := make([]Item, len(e.sequence))
	copy(out, e.sequence)
	return out
}

// Item returns the active item with the given id.
func (e *Engine) Item(id int) (Item, bool) {
	for _, it := range e.sequence {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Evaluated reports whether the adaptive decision has already been made.
func (e *Engine) Evaluated() bool { return e.evaluated }

// BaseComplete reports whether every base item has an answer.
func (e *Engine) BaseComplete(answers *AnswerMap) bool {
	for _, it := range e.bank.Base {
		if !answers.Has(it.ID) {
			return false
		}
	}
	return true
}

// Complete reports whether every item in the active sequence is answered.
func (e *Engine) Complete(answers *AnswerMap) bool {
	for _, it := range e.sequence {
		if !answers.Has(it.ID) {
			return false
		}
	}
	return true
}

// NextItems makes the one-time adaptive decision once the base set is
// answered, appends the chosen items to the sequence and returns them.
// Before the base set is complete, and on every call after the decision,
// it returns nil.
func (e *Engine) NextItems(answers *AnswerMap) []Item {
	if e.evaluated || !e.BaseComplete(answers) {
		return nil
	}
	return e.decide(answers)
}

// Finalize makes the adaptive decision if it is still pending, whether or
// not the base set is complete. Unanswered base items score 0. It returns
// the appended items, or nil when the decision was already made.
func (e *Engine) Finalize(answers *AnswerMap) []Item {
	if e.evaluated {
		return nil
	}
	return e.decide(answers)
}

func (e *Engine) decide(answers *AnswerMap) []Item {
	e.evaluated = true
	next := SelectAdaptive(e.bank, answers, e.threshold)
	e.sequence = append(e.sequence, next...)
	return next
}

// SelectAdaptive decides which adaptive items follow the base set. It is
// pure: the same bank, answers and threshold always yield the same items.
func SelectAdaptive(bank *Bank, answers *AnswerMap, threshold int) []Item {
	if TotalScore(bank.Base, answers) <= threshold {
		return nil
	}

	memoryConcern := false
	orientationConcern := false
	for i := range bank.Base {
		it := &bank.Base[i]
		v, ok := answers.Get(it.ID)
		if !ok {
			continue
		}
		switch it.Category {
		case CategoryMemory:
			if it.IsConcerning(v) {
				memoryConcern = true
			}
		case CategoryOrientation:
			if it.IsSometimesOrWorse(v) {
				orientationConcern = true
			}
		}
	}

	var out []Item
	for _, it := range bank.Adaptive {
		switch it.Category {
		case CategoryMemory:
			if memoryConcern {
				out = append(out, it)
			}
		case CategoryOrientation:
			if orientationConcern {
				out = append(out, it)
			}
		case CategoryBehavioral:
			out = append(out, it)
		}
	}
	return out
}
