package feedback

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/drillreport/internal/classify"
)

// strictVolume comments on the raw correct-answer count.
var strictVolume = []rule{
	{
		when: func(p *classify.Profile) bool { return p.TotalCorrect >= 180 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("%d correct answers is an outstanding result. The material is clearly taking hold.", p.TotalCorrect)
		},
	},
	{
		when: func(p *classify.Profile) bool { return p.TotalCorrect >= 120 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("%d correct answers — you are accumulating results steadily. Keep this pace.", p.TotalCorrect)
		},
	},
	{
		when: func(p *classify.Profile) bool { return p.TotalCorrect >= 60 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("%d correct answers so far. Work on raising that count further.", p.TotalCorrect)
		},
	},
	{
		when: always,
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("%d correct answers. Start by getting more problems right.", p.TotalCorrect)
		},
	},
}

// strictAccuracy comments on overall accuracy; the good band splits on
// whether weak topics exist.
var strictAccuracy = []rule{
	{
		when: func(p *classify.Profile) bool { return p.TotalAccuracy() >= 70 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("An overall accuracy of %.1f%% is excellent work. Carry this through to the real exam.", p.TotalAccuracy())
		},
	},
	{
		when: func(p *classify.Profile) bool { return p.TotalAccuracy() >= 50 && len(p.WeakTopics) > 0 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("Your overall accuracy of %.1f%% is solid, but %s remains a weak point. Review it deliberately.",
				p.TotalAccuracy(), strings.Join(weakNames(p), ", "))
		},
	},
	{
		when: func(p *classify.Profile) bool { return p.TotalAccuracy() >= 50 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("An overall accuracy of %.1f%% is broadly sound. Do not let your guard down.", p.TotalAccuracy())
		},
	},
	{
		when: func(p *classify.Profile) bool { return p.TotalAccuracy() >= 35 },
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("An overall accuracy of %.1f%% has not yet reached the passing line. You need to rebuild from the basics.", p.TotalAccuracy())
		},
	},
	{
		when: always,
		render: func(p *classify.Profile) string {
			return fmt.Sprintf("An overall accuracy of %.1f%% is a serious situation. Drastic measures are required.", p.TotalAccuracy())
		},
	},
}

// strictAdvice names the single worst topic. Contributes nothing when
// the student has no weak topics.
var strictAdvice = []rule{
	{
		when: func(p *classify.Profile) bool { return len(p.WeakTopics) > 0 },
		render: func(p *classify.Profile) string {
			worst := p.WeakTopics[0]
			return fmt.Sprintf("In particular, %s stands at %.1f%%, %.1f points below the school average. Tackle it intensively.",
				worst.Topic, worst.Accuracy(), math.Abs(worst.Gap))
		},
	},
}
