package questionnaire

import (
	"encoding/json"
	"fmt"
)

// Answer pairs an item id with the selected option value.
type Answer struct {
	ItemID int    `json:"id"`
	Value  string `json:"value"`
}

// AnswerMap maps item ids to selected option values, remembering the order
// in which ids were first answered. Re-answering an id replaces its value
// without moving it.
type AnswerMap struct {
	order  []int
	values map[int]string
}

// NewAnswerMap creates an AnswerMap pre-populated with answers, in order.
func NewAnswerMap(answers ...Answer) *AnswerMap {
	m := &AnswerMap{values: make(map[int]string)}
	for _, a := range answers {
		m.Set(a.ItemID, a.Value)
	}
	return m
}

// Set records value for id. The zero AnswerMap is ready to use; a nil
// *AnswerMap is read-only and Set panics on it.
func (m *AnswerMap) Set(id int, value string) {
	if m.values == nil {
		m.values = make(map[int]string)
	}
	if _, exists := m.values[id]; !exists {
		m.order = append(m.order, id)
	}
	m.values[id] = value
}

// Get returns the value recorded for id.
func (m *AnswerMap) Get(id int) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[id]
	return v, ok
}

// Has reports whether id has been answered.
func (m *AnswerMap) Has(id int) bool {
	_, ok := m.Get(id)
	return ok
}

// Len returns the number of answered ids.
func (m *AnswerMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Answers returns the answers in the order they were first given.
func (m *AnswerMap) Answers() []Answer {
	if m == nil {
		return nil
	}
	out := make([]Answer, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, Answer{ItemID: id, Value: m.values[id]})
	}
	return out
}

// Clone returns an independent copy of the map.
func (m *AnswerMap) Clone() *AnswerMap {
	return NewAnswerMap(m.Answers()...)
}

// MarshalJSON encodes the map as an ordered array of answers.
func (m *AnswerMap) MarshalJSON() ([]byte, error) {
	answers := m.Answers()
	if answers == nil {
		answers = []Answer{}
	}
	return json.Marshal(answers)
}

// UnmarshalJSON decodes an ordered array of answers.
func (m *AnswerMap) UnmarshalJSON(data []byte) error {
	var answers []Answer
	if err := json.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("decode answers: %w", err)
	}
	*m = *NewAnswerMap(answers...)
	return nil
}
