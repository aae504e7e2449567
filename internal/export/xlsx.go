// Package export writes the merged drill records as a multi-sheet XLSX
// workbook: a flat detail sheet plus attempted/correct/accuracy pivot
// matrices with one row per student and one column per (date, topic).
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/drillreport/internal/record"
)

type columnKey struct {
	Date  string
	Topic string
}

type studentKey struct {
	ID   string
	Name string
}

// Workbook writes records to an XLSX file at path. Records are expected
// to be normalized (unique keys); cells with no data are zero-filled.
func Workbook(path string, records []record.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeDetails(f, records); err != nil {
		return err
	}

	students, columns, cells := pivot(records)

	matrices := []struct {
		sheet string
		value func(record.Record) any
	}{
		{"Attempted", func(r record.Record) any { return r.Attempted }},
		{"Correct", func(r record.Record) any { return r.Correct }},
		{"Accuracy", func(r record.Record) any { return round1(r.Accuracy()) }},
	}
	for _, m := range matrices {
		if err := writeMatrix(f, m.sheet, students, columns, cells, m.value); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeDetails(f *excelize.File, records []record.Record) error {
	// Rename the default sheet rather than leaving an empty Sheet1.
	if err := f.SetSheetName("Sheet1", "Details"); err != nil {
		return fmt.Errorf("rename detail sheet: %w", err)
	}

	header := []any{"student_id", "name", "date", "topic", "attempted", "correct", "accuracy_pct"}
	if err := setRow(f, "Details", 1, header); err != nil {
		return err
	}
	for i, r := range records {
		row := []any{r.StudentID, r.Name, r.Date, r.Topic, r.Attempted, r.Correct, round1(r.Accuracy())}
		if err := setRow(f, "Details", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// pivot indexes records for matrix sheets: students in ID order, columns
// in (date, topic) order.
func pivot(records []record.Record) ([]studentKey, []columnKey, map[studentKey]map[columnKey]record.Record) {
	cells := make(map[studentKey]map[columnKey]record.Record)
	colSet := make(map[columnKey]bool)

	for _, r := range records {
		sk := studentKey{ID: r.StudentID, Name: r.Name}
		ck := columnKey{Date: r.Date, Topic: r.Topic}
		if cells[sk] == nil {
			cells[sk] = make(map[columnKey]record.Record)
		}
		cells[sk][ck] = r
		colSet[ck] = true
	}

	students := make([]studentKey, 0, len(cells))
	for sk := range cells {
		students = append(students, sk)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })

	columns := make([]columnKey, 0, len(colSet))
	for ck := range colSet {
		columns = append(columns, ck)
	}
	sort.Slice(columns, func(i, j int) bool {
		if columns[i].Date != columns[j].Date {
			return columns[i].Date < columns[j].Date
		}
		return columns[i].Topic < columns[j].Topic
	})

	return students, columns, cells
}

func writeMatrix(f *excelize.File, sheet string, students []studentKey, columns []columnKey, cells map[studentKey]map[columnKey]record.Record, value func(record.Record) any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	// Two header rows: dates over topics, matching the column pairs.
	dateRow := []any{"student_id", "name"}
	topicRow := []any{"", ""}
	for _, ck := range columns {
		dateRow = append(dateRow, ck.Date)
		topicRow = append(topicRow, ck.Topic)
	}
	if err := setRow(f, sheet, 1, dateRow); err != nil {
		return err
	}
	if err := setRow(f, sheet, 2, topicRow); err != nil {
		return err
	}

	for i, sk := range students {
		row := []any{sk.ID, sk.Name}
		for _, ck := range columns {
			if r, ok := cells[sk][ck]; ok {
				row = append(row, value(r))
			} else {
				row = append(row, 0)
			}
		}
		if err := setRow(f, sheet, i+3, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
