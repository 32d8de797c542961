package games

import (
	"fmt"
	"math"
	"math/rand/v2"
)

var wordPool = []string{
	"apple", "river", "candle", "garden", "window", "pencil", "blanket", "forest",
	"hammer", "violin", "lemon", "bridge", "button", "castle", "feather", "mirror",
	"ocean", "pillow", "rocket", "saddle", "tiger", "tunnel", "wallet", "zebra",
}

const letters = "ABCDEFGHJKLMNPRSTVWXYZ"

// Generator builds game content from a seeded source. The same seed
// always yields the same sequence of tasks.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// WordList returns n distinct words. n is capped at the pool size.
func (g *Generator) WordList(n int) []string {
	if n <= 0 {
		return nil
	}
	n = min(n, len(wordPool))
	perm := g.rng.Perm(len(wordPool))
	words := make([]string, n)
	for i := range n {
		words[i] = wordPool[perm[i]]
	}
	return words
}

// AttentionStream returns n unanswered stimuli of which round(n*ratio) show
// the target letter. Non-target stimuli never show the target.
func (g *Generator) AttentionStream(n int, target string, targetRatio float64) []Stimulus {
	if n <= 0 {
		return nil
	}
	if target == "" {
		target = string(letters[g.rng.IntN(len(letters))])
	}
	targets := int(math.Round(float64(n) * clamp(targetRatio, 0, 1)))

	stream := make([]Stimulus, n)
	for i, p := range g.rng.Perm(n) {
		if p < targets {
			stream[i] = Stimulus{Letter: target, IsTarget: true}
			continue
		}
		stream[i] = Stimulus{Letter: g.distractor(target)}
	}
	return stream
}

func (g *Generator) distractor(target string) string {
	for {
		l := string(letters[g.rng.IntN(len(letters))])
		if l != target {
			return l
		}
	}
}

// ProcessingTask is one generated processing-speed prompt.
type ProcessingTask struct {
	TaskType   TaskType `json:"taskType"`
	Complexity int      `json:"complexity"`
	Prompt     string   `json:"prompt"`
	Answer     string   `json:"answer"`
	Options    []string `json:"options,omitempty"`
	Switch     bool     `json:"switch"`
}

var colors = []string{"red", "blue", "green", "yellow"}

var directions = []string{"up", "right", "down", "left"}

// ProcessingTasks returns n tasks with mixed types and complexity. A task's
// Switch flag is set when its type differs from the previous task.
func (g *Generator) ProcessingTasks(n int) []ProcessingTask {
	if n <= 0 {
		return nil
	}
	types := AllTaskTypes()
	tasks := make([]ProcessingTask, n)
	for i := range tasks {
		tt := types[g.rng.IntN(len(types))]
		c := MinComplexity + g.rng.IntN(MaxComplexity-MinComplexity+1)
		task := g.task(tt, c)
		task.Switch = i > 0 && tasks[i-1].TaskType != tt
		tasks[i] = task
	}
	return tasks
}

func (g *Generator) task(tt TaskType, c int) ProcessingTask {
	t := ProcessingTask{TaskType: tt, Complexity: c}
	switch tt {
	case TaskMath:
		limit := 10 * c
		a, b := 1+g.rng.IntN(limit), 1+g.rng.IntN(limit)
		if c >= 2 && g.rng.IntN(2) == 0 {
			t.Prompt = fmt.Sprintf("%d - %d", max(a, b), min(a, b))
			t.Answer = fmt.Sprint(max(a, b) - min(a, b))
		} else {
			t.Prompt = fmt.Sprintf("%d + %d", a, b)
			t.Answer = fmt.Sprint(a + b)
		}
	case TaskStroop:
		word := colors[g.rng.IntN(len(colors))]
		ink := colors[g.rng.IntN(len(colors))]
		t.Prompt = fmt.Sprintf("the word %q printed in %s: name the ink", word, ink)
		t.Answer = ink
		t.Options = append([]string(nil), colors...)
	case TaskSpatial:
		start := g.rng.IntN(len(directions))
		turns := c + g.rng.IntN(2)
		t.Prompt = fmt.Sprintf("facing %s, turn right %d times", directions[start], turns)
		t.Answer = directions[(start+turns)%len(directions)]
		t.Options = append([]string(nil), directions...)
	case TaskMatch:
		size := 2 + c
		a := g.symbols(size)
		b := a
		if g.rng.IntN(2) == 0 {
			b = g.mutate(a)
		}
		t.Prompt = fmt.Sprintf("%s | %s", a, b)
		t.Answer = yesNo(a == b)
		t.Options = []string{"same", "different"}
	case TaskComparison:
		limit := int(math.Pow10(c))
		a, b := g.rng.IntN(limit), g.rng.IntN(limit)
		for a == b {
			b = g.rng.IntN(limit)
		}
		t.Prompt = fmt.Sprintf("which is larger: %d or %d", a, b)
		t.Answer = fmt.Sprint(max(a, b))
		t.Options = []string{fmt.Sprint(a), fmt.Sprint(b)}
	}
	return t
}

func (g *Generator) symbols(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = letters[g.rng.IntN(len(letters))]
	}
	return string(buf)
}

func (g *Generator) mutate(s string) string {
	buf := []byte(s)
	i := g.rng.IntN(len(buf))
	for {
		l := letters[g.rng.IntN(len(letters))]
		if l != buf[i] {
			buf[i] = l
			return string(buf)
		}
	}
}

func yesNo(same bool) string {
	if same {
		return "same"
	}
	return "different"
}
