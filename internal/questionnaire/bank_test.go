package questionnaire

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	b := DefaultBank()
	assert.Len(t, b.Base, 12)
	assert.Len(t, b.Adaptive, 3)
	assert.Equal(t, 36, b.MaxBaseScore())

	for _, c := range []Category{CategoryMemory, CategoryOrientation, CategoryBehavioral} {
		it, ok := b.AdaptiveFor(c)
		require.True(t, ok, "adaptive %s", c)
		assert.True(t, it.Adaptive)
	}

	it, ok := b.Item(14)
	require.True(t, ok)
	assert.Equal(t, CategoryOrientation, it.Category)
}

func TestParseBank_Invalid(t *testing.T) {
	data := `
base:
  - id: 1
    category: memory
    options:
      - {value: never, score: 0}
      - {value: always, score: 4}
  - id: 1
    category: astrology
    options:
      - {value: never, score: 0}
adaptive:
  - id: 2
    category: memory
    options:
      - {value: never, score: 0}
      - {value: never, score: 1}
`
	_, err := ParseBank([]byte(data))
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"score must be in [0, 3]",
		"duplicate item ID: 1",
		`unknown category "astrology"`,
		"needs at least 2 options",
		"adaptive flag must be true",
		`duplicate option "never"`,
		"exactly one orientation item",
		"exactly one behavioral item",
	} {
		assert.True(t, strings.Contains(msg, want), "missing %q in:\n%s", want, msg)
	}
}

func TestLoadBank_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, defaultBankYAML, 0o644))

	b, err := LoadBank(path)
	require.NoError(t, err)
	assert.Len(t, b.Base, 12)
}

func TestLoadBank_Missing(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
