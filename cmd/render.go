package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/cogscreen/internal/assessment"
	"github.com/abhisek/cogscreen/internal/domain"
	"github.com/abhisek/cogscreen/internal/risk"
	"github.com/abhisek/cogscreen/internal/store"
	"github.com/abhisek/cogscreen/internal/ui/theme"
)

const barWidth = 20

// printer writes report text, styled when color is enabled.
type printer struct {
	w       io.Writer
	color   bool
	catalog risk.Catalog
	th      risk.Thresholds
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *printer) bar(score float64) string {
	if !p.color {
		return theme.PlainBar(score, barWidth)
	}
	return theme.Bar(score, barWidth, p.th)
}

func (p *printer) heading(text string) {
	fmt.Fprintf(p.w, "\n%s\n", p.style(theme.Heading, text))
}

func (p *printer) list(keys []string) {
	if len(keys) == 0 {
		fmt.Fprintf(p.w, "  %s\n", p.style(theme.Hint, "none"))
		return
	}
	for _, text := range p.catalog.Render(keys) {
		fmt.Fprintf(p.w, "  • %s\n", text)
	}
}

func (p *printer) profile(prof risk.Profile) {
	level := p.style(theme.RiskColor(prof.RiskLevel), prof.RiskLevel.DisplayName()+" risk")
	fmt.Fprintf(p.w, "%s  %d/100  %s\n",
		p.style(theme.Title, "Overall"), prof.OverallScore, level)

	p.heading("Cognitive domains")
	for _, d := range domain.All() {
		v, ok := prof.DomainScores[d]
		if !ok {
			continue
		}
		fmt.Fprintf(p.w, "  %-20s %s %5.1f\n", d.DisplayName(), p.bar(v), v)
	}

	p.heading("Strengths")
	p.list(prof.Strengths)
	p.heading("Concerns")
	p.list(prof.Concerns)
	p.heading("Recommendations")
	p.list(prof.Recommendations)
}

// report prints a full analysis.
func (p *printer) report(r assessment.Report) {
	p.profile(r.Profile)

	p.heading("Score breakdown")
	fmt.Fprintf(p.w, "  %-24s %d\n", "Symptom total", r.SymptomTotal)
	fmt.Fprintf(p.w, "  %-24s %.1f\n", "Questionnaire percent", r.QuestionnairePercent)
	fmt.Fprintf(p.w, "  %-24s %.1f (%d games)\n", "Game average", r.GameAverage, r.GamesCompleted)
	fmt.Fprintf(p.w, "  %-24s %d + %d age bonus\n", "Composite", r.BaseScore, r.AgeBonus)

	if len(r.Categories) > 0 {
		p.heading("Questionnaire categories")
		for _, c := range r.Categories {
			fmt.Fprintf(p.w, "  %-20s %s %5.1f  (%d/%d, %d answered)\n",
				c.Category.DisplayName(), p.bar(c.Percent), c.Percent, c.Sum, c.Max, c.Answered)
		}
	}

	if len(r.Results) > 0 {
		p.heading("Games")
		for _, g := range r.Results {
			fmt.Fprintf(p.w, "  %-20s score %5.1f  accuracy %5.1f%%\n", g.Type.DisplayName(), g.Score, g.Accuracy)
		}
	}

	p.disclaimer()
}

func (p *printer) disclaimer() {
	fmt.Fprintf(p.w, "\n%s\n", p.style(theme.Hint, risk.Disclaimer))
}

// history prints stored profiles, newest first.
func (p *printer) history(profiles []store.Profile) {
	fmt.Fprintf(p.w, "%-19s  %-8s  %-10s  %s\n", "Updated", "Overall", "Risk", "Session")
	fmt.Fprintln(p.w, strings.Repeat("─", 80))
	for _, h := range profiles {
		fmt.Fprintf(p.w, "%-19s  %-8d  %-10s  %s\n",
			h.UpdatedAt.Local().Format("2006-01-02 15:04:05"),
			h.OverallScore,
			h.RiskLevel.DisplayName(),
			h.SessionID,
		)
	}
}
