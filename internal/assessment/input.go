package assessment

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/cogscreen/internal/domain"
	"github.com/abhisek/cogscreen/internal/games"
	"github.com/abhisek/cogscreen/internal/questionnaire"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed input.schema.json
var inputSchemaJSON []byte

const inputSchemaURL = "schema://cogscreen/input.json"

var (
	inputSchemaOnce sync.Once
	inputSchema     *jsonschema.Schema
	inputSchemaErr  error
)

// InputError reports a malformed assessment input.
type InputError struct {
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid assessment input (%s): %v", e.Reason, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// GameSessions holds the raw telemetry of every game played.
type GameSessions struct {
	Memory     []games.MemorySession     `json:"memory,omitempty"`
	Attention  []games.AttentionSession  `json:"attention,omitempty"`
	Processing []games.ProcessingSession `json:"processing,omitempty"`
}

// Document is the batch form of an assessment.
type Document struct {
	Personal PersonalInfo              `json:"personal"`
	Answers  *questionnaire.AnswerMap  `json:"answers"`
	Games    GameSessions              `json:"games"`
	Previous map[domain.Domain]float64 `json:"previous,omitempty"`
}

func compiledInputSchema() (*jsonschema.Schema, error) {
	inputSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(inputSchemaJSON, &def); err != nil {
			inputSchemaErr = fmt.Errorf("parse input schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(inputSchemaURL, def); err != nil {
			inputSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		inputSchema, inputSchemaErr = c.Compile(inputSchemaURL)
	})
	return inputSchema, inputSchemaErr
}

// DecodeDocument validates raw against the input schema and decodes it.
// Validation failures are returned as *InputError.
func DecodeDocument(raw []byte) (*Document, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &InputError{Reason: "json", Err: err}
	}

	schema, err := compiledInputSchema()
	if err != nil {
		return nil, fmt.Errorf("compile input schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &InputError{Reason: "schema", Err: err}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &InputError{Reason: "decode", Err: err}
	}
	if doc.Answers == nil {
		doc.Answers = questionnaire.NewAnswerMap()
	}
	if err := doc.Personal.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Score runs every game session through its scorer, in memory, attention,
// processing order. Processing sessions without a target use the policy's.
func (g GameSessions) Score(p Policy) []games.Result {
	var out []games.Result
	for _, s := range g.Memory {
		out = append(out, games.ScoreMemory(s))
	}
	for _, s := range g.Attention {
		out = append(out, games.ScoreAttention(s))
	}
	for _, s := range g.Processing {
		if s.TargetTrials <= 0 {
			s.TargetTrials = p.TargetTrials
		}
		out = append(out, games.ScoreProcessing(s))
	}
	return out
}

// Input builds the analysis input. The active sequence is rebuilt by
// replaying the adaptive decision over the answers, so answers to
// follow-ups the decision did not select are ignored. Missing base answers
// score 0 and do not hold the decision back.
func (d *Document) Input(bank *questionnaire.Bank, p Policy) Input {
	engine := questionnaire.NewEngine(bank, p.AdaptiveThreshold)
	engine.Finalize(d.Answers)

	return Input{
		Personal: d.Personal,
		Answers:  d.Answers.Clone(),
		Items:    engine.Sequence(),
		Results:  d.Games.Score(p),
		Previous: d.Previous,
	}
}
