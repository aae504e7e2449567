// Package report renders per-student HTML report cards from classified
// profiles, and provides the styled console summary for batch runs.
package report

import (
	"github.com/abhisek/drillreport/internal/classify"
	"github.com/abhisek/drillreport/internal/feedback"
)

// Display names for the two grader personas on the report card.
const (
	strictTeacher      = "Ms. Kirishima"
	encouragingTeacher = "Mr. Yamada"
)

// Card is everything the renderer needs for one student: the classified
// profile, both precomputed persona comments, and the ranked advice
// list. External exporters consume exactly this shape.
type Card struct {
	Profile            classify.Profile
	StrictComment      string
	EncouragingComment string
	Advice             []string
}

// BuildCard derives the renderer-facing card for one profile.
func BuildCard(p classify.Profile) Card {
	return Card{
		Profile:            p,
		StrictComment:      feedback.Comment(feedback.PersonaStrict, &p),
		EncouragingComment: feedback.Comment(feedback.PersonaEncouraging, &p),
		Advice:             feedback.Advice(&p),
	}
}

// BuildCards derives cards for every profile, preserving order.
func BuildCards(profiles []classify.Profile) []Card {
	cards := make([]Card, 0, len(profiles))
	for _, p := range profiles {
		cards = append(cards, BuildCard(p))
	}
	return cards
}

// tierLabel maps a tier to its display wording on the card.
func tierLabel(t classify.Tier) string {
	switch t {
	case classify.TierExcellent:
		return "Excellent"
	case classify.TierGood:
		return "Good"
	case classify.TierCaution:
		return "Caution"
	default:
		return "Needs Improvement"
	}
}

// tierClass maps a tier to its CSS class on the card.
func tierClass(t classify.Tier) string {
	switch t {
	case classify.TierExcellent:
		return "evaluation-excellent"
	case classify.TierGood:
		return "evaluation-good"
	case classify.TierCaution:
		return "evaluation-warning"
	default:
		return "evaluation-critical"
	}
}
