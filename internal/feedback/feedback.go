// Package feedback maps a classified student profile to comment text
// from two fixed grader personas, plus a ranked advice list.
//
// Every fragment is picked by an ordered rule table — (predicate,
// render) pairs evaluated top-down, first match wins — so the output is
// an exactly reproducible function of the profile. There is no
// generation backend and no randomness.
package feedback

import (
	"strings"

	"github.com/abhisek/drillreport/internal/classify"
)

// Persona is one of the two fixed feedback voices.
type Persona string

const (
	// PersonaStrict is the demanding voice: blunt about shortfalls,
	// prescriptive about what to fix.
	PersonaStrict Persona = "strict"
	// PersonaEncouraging is the supportive voice: leads with wins and
	// frames weaknesses as next steps.
	PersonaEncouraging Persona = "encouraging"
)

// rule pairs a predicate with the template it renders. Tables are
// evaluated in order; the first matching rule wins.
type rule struct {
	when   func(p *classify.Profile) bool
	render func(p *classify.Profile) string
}

// always is the catch-all predicate closing most tables.
func always(*classify.Profile) bool { return true }

// evalTable returns the first matching rule's rendering, or "" when no
// rule applies (a fragment may legitimately contribute nothing).
func evalTable(rules []rule, p *classify.Profile) string {
	for _, r := range rules {
		if r.when(p) {
			return r.render(p)
		}
	}
	return ""
}

// fragments lists a persona's fragment tables in output order.
var fragments = map[Persona][][]rule{
	PersonaStrict:      {strictVolume, strictAccuracy, strictAdvice},
	PersonaEncouraging: {encouragingVolume, encouragingAccuracy, encouragingAdvice},
}

// Comment assembles a persona's full comment for a profile: each
// fragment table evaluated in order, empty fragments dropped, the rest
// joined with newlines.
func Comment(persona Persona, p *classify.Profile) string {
	var parts []string
	for _, table := range fragments[persona] {
		if s := evalTable(table, p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// weakNames returns the student's weak topic names, worst first.
func weakNames(p *classify.Profile) []string {
	names := make([]string, 0, len(p.WeakTopics))
	for _, t := range p.WeakTopics {
		names = append(names, t.Topic)
	}
	return names
}
