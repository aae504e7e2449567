// Package classify derives performance labels from aggregated figures:
// weak/strong topic flags relative to the school-wide average, and an
// overall evaluation tier per student.
package classify

import (
	"sort"

	"github.com/abhisek/drillreport/internal/aggregate"
)

// Gap thresholds relative to the school average, in percentage points.
// Boundaries are inclusive: a gap of exactly -10.0 is weak.
const (
	WeakGap   = -10
	StrongGap = 5
)

// Tier is the coarse overall-performance bucket for a student.
type Tier string

const (
	TierExcellent        Tier = "excellent"
	TierGood             Tier = "good"
	TierCaution          Tier = "caution"
	TierNeedsImprovement Tier = "needs_improvement"
)

// TierFor buckets a total accuracy percentage. Lower bounds are
// inclusive: exactly 70.0 is excellent.
func TierFor(totalAccuracy float64) Tier {
	switch {
	case totalAccuracy >= 70:
		return TierExcellent
	case totalAccuracy >= 50:
		return TierGood
	case totalAccuracy >= 35:
		return TierCaution
	default:
		return TierNeedsImprovement
	}
}

// TopicAssessment is a TopicStat annotated with its standing relative to
// the school-wide average for that topic.
type TopicAssessment struct {
	aggregate.TopicStat
	SchoolAvg float64
	Gap       float64 // Accuracy() - SchoolAvg
	Weak      bool
	Strong    bool
}

// Profile is a fully classified student: topic assessments in canonical
// (topic name) order, ranked weak/strong views, and the overall tier.
type Profile struct {
	aggregate.Student
	Assessments  []TopicAssessment
	WeakTopics   []TopicAssessment // worst first (most negative gap)
	StrongTopics []TopicAssessment // best first (largest gap)
	Tier         Tier
}

// Assess classifies a single topic stat against the population snapshot.
func Assess(ts aggregate.TopicStat, pop *aggregate.Population) TopicAssessment {
	avg := pop.Average(ts.Topic)
	gap := ts.Accuracy() - avg
	return TopicAssessment{
		TopicStat: ts,
		SchoolAvg: avg,
		Gap:       gap,
		Weak:      gap <= WeakGap,
		Strong:    gap >= StrongGap,
	}
}

// Student classifies one student against the population snapshot. Pure:
// re-running over the same inputs yields the same profile.
func Student(s aggregate.Student, pop *aggregate.Population) Profile {
	p := Profile{
		Student:     s,
		Assessments: make([]TopicAssessment, 0, len(s.Topics)),
		Tier:        TierFor(s.TotalAccuracy()),
	}

	for _, ts := range s.Topics {
		ta := Assess(ts, pop)
		p.Assessments = append(p.Assessments, ta)
		if ta.Weak {
			p.WeakTopics = append(p.WeakTopics, ta)
		}
		if ta.Strong {
			p.StrongTopics = append(p.StrongTopics, ta)
		}
	}

	// Stable sorts keep canonical topic order for equal gaps.
	sort.SliceStable(p.WeakTopics, func(i, j int) bool {
		return p.WeakTopics[i].Gap < p.WeakTopics[j].Gap
	})
	sort.SliceStable(p.StrongTopics, func(i, j int) bool {
		return p.StrongTopics[i].Gap > p.StrongTopics[j].Gap
	})

	return p
}

// All classifies every student in an aggregation result.
func All(res *aggregate.Result) []Profile {
	profiles := make([]Profile, 0, len(res.Students))
	for _, s := range res.Students {
		profiles = append(profiles, Student(s, res.Population))
	}
	return profiles
}
