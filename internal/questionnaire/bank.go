package questionnaire

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var defaultBankYAML []byte

var (
	defaultBank     *Bank
	defaultBankOnce sync.Once
)

// Bank holds the fixed base items and the supplemental adaptive pool.
type Bank struct {
	Base     []Item `yaml:"base"`
	Adaptive []Item `yaml:"adaptive"`
}

// DefaultBank returns the embedded item bank. It panics if the embedded
// file is invalid, which is a build-time defect.
func DefaultBank() *Bank {
	defaultBankOnce.Do(func() {
		b, err := ParseBank(defaultBankYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded question bank: %v", err))
		}
		defaultBank = b
	})
	return defaultBank
}

// LoadBank reads and validates a YAML item bank from path.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(data)
}

// ParseBank decodes and validates a YAML item bank.
func ParseBank(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unmarshal question bank: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Item looks up an item by id across both pools.
func (b *Bank) Item(id int) (Item, bool) {
	for _, it := range b.Base {
		if it.ID == id {
			return it, true
		}
	}
	for _, it := range b.Adaptive {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// AdaptiveFor returns the adaptive item probing category.
func (b *Bank) AdaptiveFor(c Category) (Item, bool) {
	for _, it := range b.Adaptive {
		if it.Category == c {
			return it, true
		}
	}
	return Item{}, false
}

// MaxBaseScore returns the highest total the base set can reach.
func (b *Bank) MaxBaseScore() int {
	total := 0
	for i := range b.Base {
		total += b.Base[i].MaxScore()
	}
	return total
}
