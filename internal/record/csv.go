package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Columns required in every input file. Order in the file doesn't matter;
// columns are located by header name.
var requiredColumns = []string{"student_id", "name", "date", "topic", "attempted", "correct"}

// Read decodes drill records from r. The name argument is used only to
// annotate errors with their source.
func Read(r io.Reader, name string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty file", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q", name, c)
		}
	}

	var records []Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", name, row, err)
		}

		rec, err := parseRow(fields, cols)
		if err != nil {
			var de *DataError
			if errors.As(err, &de) {
				return nil, de.at(name, row)
			}
			return nil, fmt.Errorf("%s: row %d: %w", name, row, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadFile decodes drill records from the file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}

func parseRow(fields []string, cols map[string]int) (Record, error) {
	get := func(c string) string {
		i := cols[c]
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	rec := Record{
		StudentID: get("student_id"),
		Name:      NormalizeName(get("name")),
		Topic:     get("topic"),
	}

	var err error
	if rec.Attempted, err = parseCount(get("attempted")); err != nil {
		return Record{}, &DataError{StudentID: rec.StudentID, Topic: rec.Topic, Reason: "attempted: " + err.Error()}
	}
	if rec.Correct, err = parseCount(get("correct")); err != nil {
		return Record{}, &DataError{StudentID: rec.StudentID, Topic: rec.Topic, Reason: "correct: " + err.Error()}
	}
	if rec.Date, err = NormalizeDate(get("date")); err != nil {
		return Record{}, &DataError{StudentID: rec.StudentID, Topic: rec.Topic, Reason: err.Error()}
	}

	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty count")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	return n, nil
}

// Write encodes records to w with the canonical header plus a recomputed
// accuracy_pct column. Callers pass already-normalized (and therefore
// already-sorted) records.
func Write(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"student_id", "name", "date", "topic", "attempted", "correct", "accuracy_pct"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.StudentID,
			r.Name,
			r.Date,
			r.Topic,
			strconv.Itoa(r.Attempted),
			strconv.Itoa(r.Correct),
			strconv.FormatFloat(r.Accuracy(), 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes records to the file at path, creating it if needed.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create records file: %w", err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
