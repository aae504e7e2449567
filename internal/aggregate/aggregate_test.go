package aggregate

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/abhisek/drillreport/internal/record"
)

func rec(id, name, date, topic string, attempted, correct int) record.Record {
	return record.Record{StudentID: id, Name: name, Date: date, Topic: topic, Attempted: attempted, Correct: correct}
}

func TestBuild_PopulationAverage(t *testing.T) {
	// Student X: 8/10 (80%), student Y: 2/10 (20%) → school average 50%.
	records := []record.Record{
		rec("x", "X", "2026/02/02", "algebra", 10, 8),
		rec("y", "Y", "2026/02/02", "algebra", 10, 2),
	}

	res, err := Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := res.Population.Average("algebra"); got != 50 {
		t.Errorf("Average(algebra) = %v, want 50", got)
	}
	if got := res.Population.Average("unknown"); got != 0 {
		t.Errorf("Average(unknown) = %v, want 0", got)
	}
}

func TestBuild_StudentTotalsEqualTopicSums(t *testing.T) {
	records := []record.Record{
		rec("s1", "A", "2026/02/02", "algebra", 10, 8),
		rec("s1", "A", "2026/02/03", "algebra", 6, 3),
		rec("s1", "A", "2026/02/02", "geometry", 4, 1),
		rec("s2", "B", "2026/02/02", "algebra", 5, 5),
	}

	res, err := Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, s := range res.Students {
		var attempted, correct int
		for _, ts := range s.Topics {
			if ts.Correct < 0 || ts.Correct > ts.Attempted {
				t.Errorf("student %s topic %s: counts %d/%d violate invariant", s.ID, ts.Topic, ts.Correct, ts.Attempted)
			}
			attempted += ts.Attempted
			correct += ts.Correct
		}
		if attempted != s.TotalAttempted || correct != s.TotalCorrect {
			t.Errorf("student %s totals %d/%d, topic sums %d/%d", s.ID, s.TotalAttempted, s.TotalCorrect, attempted, correct)
		}
	}

	s1 := res.Students[0]
	if s1.ID != "s1" || s1.TotalAttempted != 20 || s1.TotalCorrect != 12 {
		t.Errorf("s1 = %s %d/%d, want s1 12/20", s1.ID, s1.TotalCorrect, s1.TotalAttempted)
	}
}

func TestBuild_OrderIndependent(t *testing.T) {
	records := []record.Record{
		rec("s1", "A", "2026/02/02", "algebra", 10, 8),
		rec("s2", "B", "2026/02/02", "geometry", 6, 3),
		rec("s1", "A", "2026/02/02", "geometry", 4, 1),
		rec("s3", "C", "2026/02/03", "algebra", 5, 5),
		rec("s2", "B", "2026/02/03", "algebra", 7, 2),
	}

	base, err := Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]record.Record, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := Build(shuffled)
		if err != nil {
			t.Fatalf("Build shuffled: %v", err)
		}
		if !reflect.DeepEqual(got.Students, base.Students) {
			t.Fatalf("students differ under input reordering")
		}
		for _, topic := range base.Population.Topics() {
			if got.Population.Average(topic) != base.Population.Average(topic) {
				t.Fatalf("population average for %s differs under input reordering", topic)
			}
		}
	}
}

func TestBuild_OmitsTopicsWithNoRecords(t *testing.T) {
	records := []record.Record{
		rec("s1", "A", "2026/02/02", "algebra", 10, 8),
		rec("s2", "B", "2026/02/02", "geometry", 6, 3),
	}
	res, err := Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s1 := res.Students[0]
	if len(s1.Topics) != 1 || s1.Topics[0].Topic != "algebra" {
		t.Errorf("s1 topics = %v, want only algebra (no zero-filled geometry)", s1.Topics)
	}
}

func TestBuild_ZeroAttemptedTopicKept(t *testing.T) {
	// A recorded session with zero attempts still yields a TopicStat:
	// "no data" is distinct from having no record at all.
	records := []record.Record{
		rec("s1", "A", "2026/02/02", "algebra", 0, 0),
	}
	res, err := Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s1 := res.Students[0]
	if len(s1.Topics) != 1 {
		t.Fatalf("topics = %v, want the zero-attempted stat kept", s1.Topics)
	}
	if got := s1.TotalAccuracy(); got != 0 {
		t.Errorf("TotalAccuracy = %v, want 0", got)
	}
	if got := res.Population.Average("algebra"); got != 0 {
		t.Errorf("Average(algebra) = %v, want 0 for zero attempts", got)
	}
}

func TestBuild_EmptyDataset(t *testing.T) {
	_, err := Build(nil)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("err = %v, want ErrEmptyDataset", err)
	}
}
