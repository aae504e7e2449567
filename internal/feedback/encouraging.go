package feedback

import (
	"fmt"

	"github.com/abhisek/drillreport/internal/classify"
)

// encouragingVolume shares the strict persona's count tiers but with its
// own templates.
var encouragingVolume = []rule{
	{
		when: func(p *classify.Profile) bool { return p.TotalCorrect >= 180 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("%d correct answers — that's serious skill!", p.TotalCorrect)
		},
	},
	{
		when: func(p *classify.Profile) bool { return p.TotalCorrect >= 120 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("%d correct! The right answers keep piling up — keep that rhythm going!", p.TotalCorrect)
		},
	},
	{
		when: func(p *classify.Profile) bool { return p.TotalCorrect >= 60 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("%d correct! It only gets more fun as the wins add up!", p.TotalCorrect)
		},
	},
	{
		when: always,
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("%d correct answers so far. Let's stack up wins one at a time!", p.TotalCorrect)
		},
	},
}

// encouragingAccuracy leads with the best strong topic when there is
// one, otherwise falls back to a general note keyed on overall accuracy.
var encouragingAccuracy = []rule{
	{
		when: func(p *classify.Profile) bool { return len(p.StrongTopics) > 0 },
		render: func(p *classify.Profile) string {
			best := p.StrongTopics[0]
			return fmt.Sprintf("%.1f%% in %s — amazing! You've built a real strength there!", best.Accuracy(), best.Topic)
		},
	},
	{
		when: func(p *classify.Profile) bool { return p.TotalAccuracy() >= 50 },
		render: func(p *classify.Profile) string {
			return "You're scoring evenly across the board — great balance!"
		},
	},
	{
		when: always,
		render: func(p *classify.Profile) string {
			return "Having tough topics is completely fine! Clear them one at a time and the strength will come!"
		},
	},
}

// encouragingAdvice always contributes a closing line.
var encouragingAdvice = []rule{
	{
		when: func(p *classify.Profile) bool { return len(p.WeakTopics) > 0 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("Let's start with %s — we'll work on it together!", p.WeakTopics[0].Topic)
		},
	},
	{
		when: always,
		render: func(p *classify.Profile) string {
			return "Ride this momentum all the way to exam day — you can do it!"
		},
	},
}
