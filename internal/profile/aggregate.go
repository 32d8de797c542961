package profile

import (
	"math"

	"github.com/abhisek/cogscreen/internal/domain"
	"github.com/abhisek/cogscreen/internal/games"
	"github.com/abhisek/cogscreen/internal/questionnaire"
)

// Source records where a domain value came from.
type Source string

const (
	SourceGame          Source = "game"
	SourceQuestionnaire Source = "questionnaire"
	SourcePrevious      Source = "previous"
	SourceDefault       Source = "default"
)

// Input is everything the aggregator reads.
type Input struct {
	Results              []games.Result
	Categories           map[questionnaire.Category]questionnaire.CategoryScore
	QuestionnairePercent float64
	Age                  int

	// Previous holds the last computed domain values, used for domains
	// this assessment did not measure.
	Previous map[domain.Domain]float64
}

// Composite is the aggregated outcome.
type Composite struct {
	DomainScores         map[domain.Domain]float64 `json:"domainScores"`
	Sources              map[domain.Domain]Source  `json:"sources"`
	GameAverage          float64                   `json:"gameAverage"`
	GamesCompleted       int                       `json:"gamesCompleted"`
	QuestionnairePercent float64                   `json:"questionnairePercent"`
	BaseScore            int                       `json:"baseScore"`
	AgeBonus             int                       `json:"ageBonus"`
	Overall              int                       `json:"overall"`
}

// CategoryDomain maps a questionnaire category to the domain it measures.
// Categories without a domain only feed the overall questionnaire percent.
func CategoryDomain(c questionnaire.Category) (domain.Domain, bool) {
	switch c {
	case questionnaire.CategoryMemory:
		return domain.Memory, true
	case questionnaire.CategoryLanguage:
		return domain.Language, true
	case questionnaire.CategoryOrientation:
		return domain.Orientation, true
	case questionnaire.CategoryExecutiveFunction:
		return domain.Executive, true
	case questionnaire.CategoryVisuospatial:
		return domain.Visuospatial, true
	default:
		return "", false
	}
}

// Aggregate computes domain scores and the composite. Results with an
// unknown game type and categories without a domain are skipped.
func Aggregate(in Input, p Policy) Composite {
	c := Composite{
		DomainScores:         make(map[domain.Domain]float64, len(domain.All())),
		Sources:              make(map[domain.Domain]Source, len(domain.All())),
		QuestionnairePercent: clamp(in.QuestionnairePercent, 0, 100),
	}

	byDomain := make(map[domain.Domain][]float64)
	var scores []float64
	for _, r := range in.Results {
		d, ok := r.Type.Domain()
		if !ok {
			continue
		}
		s := clamp(r.Score, 0, 100)
		byDomain[d] = append(byDomain[d], s)
		scores = append(scores, s)
	}
	c.GamesCompleted = len(scores)
	c.GameAverage = mean(scores)

	fromQuestionnaire := make(map[domain.Domain]float64)
	for cat, cs := range in.Categories {
		d, ok := CategoryDomain(cat)
		if !ok || cs.Answered == 0 {
			continue
		}
		fromQuestionnaire[d] = cs.Percent()
	}

	for _, d := range domain.All() {
		switch {
		case len(byDomain[d]) > 0:
			c.DomainScores[d] = mean(byDomain[d])
			c.Sources[d] = SourceGame
		case hasKey(fromQuestionnaire, d):
			c.DomainScores[d] = fromQuestionnaire[d]
			c.Sources[d] = SourceQuestionnaire
		case hasKey(in.Previous, d):
			c.DomainScores[d] = clamp(in.Previous[d], 0, 100)
			c.Sources[d] = SourcePrevious
		default:
			c.DomainScores[d] = p.NeutralScore
			c.Sources[d] = SourceDefault
		}
	}

	c.BaseScore = BaseScore(c.GameAverage, c.GamesCompleted > 0, c.QuestionnairePercent, p)
	c.AgeBonus = AgeBonus(in.Age)
	c.Overall = min(c.BaseScore+c.AgeBonus, 100)
	return c
}

// BaseScore blends the game average and questionnaire percent. Without
// any completed game the questionnaire percent stands alone.
func BaseScore(gameAverage float64, hasGames bool, questionnairePercent float64, p Policy) int {
	var v float64
	if hasGames {
		v = gameAverage*p.GameWeight + questionnairePercent*p.QuestionnaireWeight
	} else {
		v = questionnairePercent
	}
	return int(clamp(math.Round(v), 0, 100))
}

func hasKey(m map[domain.Domain]float64, d domain.Domain) bool {
	_, ok := m[d]
	return ok
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
