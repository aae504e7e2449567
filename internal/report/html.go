package report

import (
	_ "embed"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/osteele/liquid"

	"github.com/abhisek/drillreport/internal/classify"
)

//go:embed card.html.liquid
var cardTemplate string

// topicsShown caps the strong/weak panels on the card.
const topicsShown = 3

// Renderer renders report cards to HTML through a parsed Liquid
// template. Safe for reuse across a batch.
type Renderer struct {
	tpl *liquid.Template
}

// NewRenderer parses the embedded card template.
func NewRenderer() (*Renderer, error) {
	tpl, err := liquid.NewEngine().ParseTemplate([]byte(cardTemplate))
	if err != nil {
		return nil, fmt.Errorf("parse card template: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render produces the HTML report card for one student. The period
// label appears in the card header; now stamps the footer.
func (r *Renderer) Render(card Card, period string, now time.Time) (string, error) {
	out, err := r.tpl.Render(bindings(card, period, now))
	if err != nil {
		return "", fmt.Errorf("render card for %s: %w", card.Profile.ID, err)
	}
	return string(out), nil
}

// bindings flattens a card into template variables. All user-sourced
// text is escaped here; Liquid output tags emit raw strings.
func bindings(card Card, period string, now time.Time) liquid.Bindings {
	p := card.Profile

	// All topics, highest accuracy first; ties keep canonical order.
	sorted := make([]classify.TopicAssessment, len(p.Assessments))
	copy(sorted, p.Assessments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Accuracy() > sorted[j].Accuracy()
	})

	all := make([]map[string]any, 0, len(sorted))
	for _, ta := range sorted {
		all = append(all, topicVars(ta))
	}

	return liquid.Bindings{
		"period":       html.EscapeString(period),
		"generated_on": now.Format("January 2, 2006"),
		"student": map[string]any{
			"name":            html.EscapeString(p.Name),
			"total_attempted": p.TotalAttempted,
			"total_correct":   p.TotalCorrect,
			"total_accuracy":  fmt.Sprintf("%.1f", p.TotalAccuracy()),
			"tier_label":      tierLabel(p.Tier),
			"tier_class":      tierClass(p.Tier),
		},
		"topics":        all,
		"strong_topics": topPanel(p.StrongTopics),
		"weak_topics":   topPanel(p.WeakTopics),
		"comments": []map[string]any{
			{"teacher": strictTeacher, "class": "strict", "html": commentHTML(card.StrictComment)},
			{"teacher": encouragingTeacher, "class": "encouraging", "html": commentHTML(card.EncouragingComment)},
		},
		"advices": escapeAll(card.Advice),
	}
}

func topicVars(ta classify.TopicAssessment) map[string]any {
	class := ""
	switch {
	case ta.Strong:
		class = "strong"
	case ta.Weak:
		class = "weak"
	}
	return map[string]any{
		"name":     html.EscapeString(ta.Topic),
		"accuracy": fmt.Sprintf("%.1f", ta.Accuracy()),
		"gap":      fmt.Sprintf("%+.1f", ta.Gap),
		"class":    class,
	}
}

func topPanel(topics []classify.TopicAssessment) []map[string]any {
	if len(topics) > topicsShown {
		topics = topics[:topicsShown]
	}
	out := make([]map[string]any, 0, len(topics))
	for _, ta := range topics {
		out = append(out, topicVars(ta))
	}
	return out
}

// commentHTML escapes a persona comment and turns its newline
// separators into line breaks.
func commentHTML(comment string) string {
	return strings.ReplaceAll(html.EscapeString(comment), "\n", "<br>")
}

func escapeAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, html.EscapeString(s))
	}
	return out
}
