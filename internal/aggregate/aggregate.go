// Package aggregate turns normalized drill records into per-student,
// per-topic, and school-wide statistics.
//
// Aggregation is strictly two-phase: the population averages for every
// topic are computed over the full dataset before any student figure is
// derived, because each student's later classification compares against
// those averages. The Population snapshot is never mutated afterwards.
package aggregate

import (
	"errors"
	"sort"

	"github.com/abhisek/drillreport/internal/record"
)

// ErrEmptyDataset is returned when no records remain after
// normalization. An empty population has no meaningful averages, so the
// pipeline refuses to continue rather than emit all-zero artifacts.
var ErrEmptyDataset = errors.New("no drill records in dataset")

// TopicStat holds one student's combined counts for a single topic.
// A stat exists only for topics the student has at least one record for;
// Attempted may still be zero (recorded sessions with no questions
// answered), which is distinct from having no stat at all.
type TopicStat struct {
	Topic     string
	Attempted int
	Correct   int
}

// Accuracy returns the stat's accuracy as a percentage, 0 when nothing
// was attempted.
func (ts TopicStat) Accuracy() float64 {
	if ts.Attempted == 0 {
		return 0
	}
	return float64(ts.Correct) / float64(ts.Attempted) * 100
}

// Student holds one student's aggregated figures across all topics.
// Topics are sorted by topic name so the result is independent of input
// ordering.
type Student struct {
	ID             string
	Name           string
	Topics         []TopicStat
	TotalAttempted int
	TotalCorrect   int
}

// TotalAccuracy returns the student's overall accuracy as a percentage,
// 0 when nothing was attempted.
func (s Student) TotalAccuracy() float64 {
	if s.TotalAttempted == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAttempted) * 100
}

// Population is the immutable school-wide average snapshot: mean
// accuracy per topic across every student's records.
type Population struct {
	averages map[string]float64
}

// Average returns the school-wide average accuracy for topic, 0 when the
// topic is unknown or had no attempts.
func (p *Population) Average(topic string) float64 {
	return p.averages[topic]
}

// Topics returns the known topic names sorted alphabetically.
func (p *Population) Topics() []string {
	out := make([]string, 0, len(p.averages))
	for t := range p.averages {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Result is the full aggregation output: every student plus the
// population snapshot their classification will be measured against.
type Result struct {
	Students   []Student
	Population *Population
}

// Build aggregates normalized records. Phase one computes the population
// average per topic over the whole dataset; phase two groups records by
// student and topic. Grouping is order-independent: students are sorted
// by ID and topics by name.
func Build(records []record.Record) (*Result, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return &Result{
		Students:   buildStudents(records),
		Population: buildPopulation(records),
	}, nil
}

func buildPopulation(records []record.Record) *Population {
	type counts struct{ attempted, correct int }
	totals := make(map[string]counts)
	for _, r := range records {
		c := totals[r.Topic]
		c.attempted += r.Attempted
		c.correct += r.Correct
		totals[r.Topic] = c
	}

	averages := make(map[string]float64, len(totals))
	for topic, c := range totals {
		if c.attempted == 0 {
			averages[topic] = 0
			continue
		}
		averages[topic] = float64(c.correct) / float64(c.attempted) * 100
	}
	return &Population{averages: averages}
}

func buildStudents(records []record.Record) []Student {
	byStudent := make(map[string][]record.Record)
	names := make(map[string]string)
	for _, r := range records {
		byStudent[r.StudentID] = append(byStudent[r.StudentID], r)
		if _, ok := names[r.StudentID]; !ok {
			names[r.StudentID] = r.Name
		}
	}

	ids := make([]string, 0, len(byStudent))
	for id := range byStudent {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	students := make([]Student, 0, len(ids))
	for _, id := range ids {
		students = append(students, buildStudent(id, names[id], byStudent[id]))
	}
	return students
}

func buildStudent(id, name string, rows []record.Record) Student {
	byTopic := make(map[string]TopicStat)
	for _, r := range rows {
		ts := byTopic[r.Topic]
		ts.Topic = r.Topic
		ts.Attempted += r.Attempted
		ts.Correct += r.Correct
		byTopic[r.Topic] = ts
	}

	topics := make([]TopicStat, 0, len(byTopic))
	for _, ts := range byTopic {
		topics = append(topics, ts)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Topic < topics[j].Topic })

	s := Student{ID: id, Name: name, Topics: topics}
	for _, ts := range topics {
		s.TotalAttempted += ts.Attempted
		s.TotalCorrect += ts.Correct
	}
	return s
}
