package record

import (
	"fmt"
	"strings"
)

// DataError reports a malformed input row. It is fatal for the whole
// batch: silently dropping rows would skew the population averages every
// student is measured against.
type DataError struct {
	File      string
	Row       int // 1-based data row index, 0 when unknown
	StudentID string
	Topic     string
	Reason    string
}

func (e *DataError) Error() string {
	var b strings.Builder
	b.WriteString("bad record")
	if e.File != "" {
		fmt.Fprintf(&b, " in %s", e.File)
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " (row %d)", e.Row)
	}
	if e.StudentID != "" {
		fmt.Fprintf(&b, " student %s", e.StudentID)
	}
	if e.Topic != "" {
		fmt.Fprintf(&b, " topic %q", e.Topic)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// at returns a copy of the error annotated with its file position.
func (e *DataError) at(file string, row int) *DataError {
	dup := *e
	dup.File = file
	dup.Row = row
	return &dup
}
