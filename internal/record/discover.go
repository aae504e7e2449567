package record

import (
	"fmt"
	"path/filepath"
	"sort"
)

// DefaultPattern matches the per-batch export files dropped into the
// input directory by the drill platform.
const DefaultPattern = "drill_records_*.csv"

// Discover returns the input files under dir matching pattern, sorted by
// name so batches load in a stable order.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// LoadDir reads every matching file under dir and concatenates their
// rows in file order. Returns the rows and the list of files read.
func LoadDir(dir, pattern string) ([]Record, []string, error) {
	files, err := Discover(dir, pattern)
	if err != nil {
		return nil, nil, err
	}
	var records []Record
	for _, f := range files {
		rows, err := ReadFile(f)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rows...)
	}
	return records, files, nil
}
