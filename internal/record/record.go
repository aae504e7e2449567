// Package record defines the raw drill-record type and the ingestion
// boundary: CSV decoding, field validation, and duplicate-key merging.
package record

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the canonical date format for normalized records.
const DateLayout = "2006/01/02"

// acceptedLayouts are the date forms tolerated on input, tried in order.
var acceptedLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"2006/1/2",
	"2006-1-2",
}

// Record is one drill submission row: a student's attempt counts for a
// single topic on a single date. Immutable once read.
type Record struct {
	StudentID string
	Name      string
	Date      string // canonical DateLayout form
	Topic     string
	Attempted int
	Correct   int
}

// Key identifies the merge group a record belongs to. Records sharing a
// key are summed by Normalize.
type Key struct {
	StudentID string
	Date      string
	Topic     string
}

// Key returns the record's merge key.
func (r Record) Key() Key {
	return Key{StudentID: r.StudentID, Date: r.Date, Topic: r.Topic}
}

// Accuracy returns the row's accuracy as a percentage, 0 when nothing
// was attempted.
func (r Record) Accuracy() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempted) * 100
}

// Validate checks the invariants every ingested row must satisfy.
// Returns a *DataError describing the first violation found.
func (r Record) Validate() error {
	if r.StudentID == "" {
		return &DataError{Reason: "missing student_id"}
	}
	if r.Topic == "" {
		return &DataError{StudentID: r.StudentID, Reason: "missing topic"}
	}
	if r.Attempted < 0 || r.Correct < 0 {
		return &DataError{
			StudentID: r.StudentID,
			Topic:     r.Topic,
			Reason:    fmt.Sprintf("negative counts (attempted=%d, correct=%d)", r.Attempted, r.Correct),
		}
	}
	if r.Attempted < r.Correct {
		return &DataError{
			StudentID: r.StudentID,
			Topic:     r.Topic,
			Reason:    fmt.Sprintf("correct count %d exceeds attempted count %d", r.Correct, r.Attempted),
		}
	}
	return nil
}

// NormalizeDate parses an input date in any accepted layout and returns
// it in canonical form.
func NormalizeDate(s string) (string, error) {
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", s)
}

// nameJunk matches the separator characters stripped from display names:
// whitespace plus ASCII and full-width underscores.
var nameJunk = regexp.MustCompile(`[\s_＿]+`)

// NormalizeName strips spacing and underscore variants from a display
// name so the same student merges across differently-formatted files.
func NormalizeName(s string) string {
	return nameJunk.ReplaceAllString(s, "")
}
