package feedback

import (
	"fmt"

	"github.com/abhisek/drillreport/internal/classify"
)

// maxAdvice caps the rendered advice list.
const maxAdvice = 3

// adviceRules build the report card's study-advice checklist. Unlike the
// persona tables every matching rule contributes, in priority order; the
// list is then truncated to maxAdvice items.
var adviceRules = []rule{
	{
		when: func(p *classify.Profile) bool { return p.TotalAccuracy() < 50 },
		render: func(p *classify.Profile) string {
			return "Build understanding steadily, starting from fundamental problems."
		},
	},
	{
		when: func(p *classify.Profile) bool { return len(p.WeakTopics) > 0 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("Make %s a review priority ahead of other topics.", p.WeakTopics[0].Topic)
		},
	},
	{
		when: func(p *classify.Profile) bool { return len(p.StrongTopics) > 0 },
		render: func(p *classify.Profile) string {
			return "Keep your strong topics sharp and polish them into reliable points."
		},
	},
	{
		when: always,
		render: func(p *classify.Profile) string {
			return "A daily study habit is the shortest route to passing."
		},
	},
}

// Advice returns the ranked study-advice list for a profile, at most
// maxAdvice items.
func Advice(p *classify.Profile) []string {
	var out []string
	for _, r := range adviceRules {
		if !r.when(p) {
			continue
		}
		out = append(out, r.render(p))
		if len(out) == maxAdvice {
			break
		}
	}
	return out
}
